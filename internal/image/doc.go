// Package imagepkg stamps a logo onto a photo.
//
// The logo is scaled to a fixed fraction of the background width with its
// aspect ratio kept, resampled with a Lanczos filter and alpha-composited
// into the top right corner. The result is flattened and written as JPEG.
// Helpers cover the inputs a logo usually comes from: a transparent PNG, a
// logo on a flat white background (RemoveBackground) or a QR code (QRLogo).
package imagepkg
