// Package aseprite decodes and encodes the Aseprite sprite file format: a
// little-endian, chunked binary container holding a pixel-animation project
// (frames, layers, cels, palettes, tags, slices, tilesets, user metadata).
//
// Decode and Encode are inverse operations; unknown chunk regions survive a
// round trip. Pixel compositing and rasterization are not this package's
// job; DecodeOptions.DecodeImages controls how far Decode inflates
// compressed pixel data.
package aseprite
