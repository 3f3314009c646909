// Package imaging provides the image-side collaborators of the
// detection pipeline: a cached loader that answers dimension queries
// for the exporter, plus the standalone image operations exposed as
// CLI commands (pixel reports, the preprocess chain, HSV masking and
// bounding-box annotation).
//
// # Supported formats
//
// The loader registers decoders for every extension the exporter pairs
// with annotation files: JPEG, PNG, GIF, BMP, TIFF and WebP. WebP is
// decode-only; operations always save their results as PNG.
//
// # Determinism
//
// Nothing in this package spawns goroutines or depends on map
// iteration order for results. Pixel walks run top-to-bottom,
// left-to-right, so statistics and masks are reproducible.
package imaging
