// Package model defines the data types shared across the pdf-to-md
// pipeline: raw positioned runs as decoded from the extraction engine's
// transport, normalized text runs as produced by the layout collector,
// pages, font tables, and aggregate output statistics.
//
// All coordinates use page units with the origin at the top-left corner,
// matching the pdftohtml XML transport: top increases downward, left
// increases rightward.
package model
