// Package render draws transform results for viewing: titled image sheets and histogram plots.
package render
