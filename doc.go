// Package pixtone provides a pure-Go implementation of classic single-pass pixel transforms.
//
// It covers the photographic negative, 256-bin channel histograms, channel-mean grayscale
// reduction, percentile contrast stretching, CDF histogram equalization, Gaussian smoothing
// and unsharp-mask sharpening over 8-bit pixel arrays, plus the image I/O needed to get
// arrays in and out of common container formats.
package pixtone
