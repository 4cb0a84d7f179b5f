// Package rings generates line art for pen plotters: families of concentric,
// noise-perturbed rings that read as topographic contours or engraved wood
// grain.
//
// # Composition
//
// A [Config] describes one composition. [NewComposer] validates it, builds
// the noise generators and the cumulative radius table once, and
// [Composer.Compose] turns a seed into a list of [Polyline] values in
// drawing units (centimetres by default). For a fixed configuration and seed
// the output is identical from run to run.
//
// Each ring is produced in four steps:
//
//   - The [SpacingPolicy] gives the radial increment after every ring. Rings
//     are packed tightly in the middle and relax to an even spacing.
//   - The [ContourGenerator] samples the ring at a density that keeps the
//     distance between samples roughly constant, displacing every drawn
//     sample radially by a weighted sum of coherent noise ([NoiseStack]).
//   - A two-state [Continuation] process decides per sample whether the pen
//     is down, producing a sequence of [Sample] values that are either
//     points or gaps.
//   - [Runs] splits the sequence at gaps into segments, and a
//     [SegmentTransform] moves each segment according to the configured
//     [TransformMode].
//
// Finally all segments are trimmed to the margin box with
// [ClipPolylines].
//
// # Growth
//
// With [Config.Generation] set to [GrowthRings], rings are not sampled
// independently. The first ring is a circle of [Config.InitialRadius]; each
// following ring moves every point of the ring inside it outward, along the
// ring's normal and along the point's angle, by the amounts in
// [GrowthPolicy]. Gaps, segment transforms and clipping work as for noise
// rings.
//
// # Layers
//
// With [Config.Layers] set, the full ring set is generated once per layer.
// Layers share the noise generators, sampling them in three dimensions
// with the layer coordinate as the third axis, so neighbouring layers look
// alike. Each layer restarts the gap process.
//
// # Randomness
//
// Every stochastic decision of a ring draws from that ring's own stream,
// derived from the composition seed and the ring's (layer, index) pair.
// Noise generators are seeded separately through [NoiseSource.Seed], so
// changing the composition seed changes phases and gap patterns but not the
// shape of the noise.
//
// # Output
//
// [WriteSVG] writes a plotter-ready SVG document sized in physical units;
// [WritePNG] renders a raster preview.
package rings
