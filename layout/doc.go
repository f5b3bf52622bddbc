// Package layout turns the positioned text runs of a decoded page into
// ordered plain text and classified blocks.
//
// The pipeline runs one page at a time and strictly forward: collect and
// normalize runs, split them into columns, sort them into reading order,
// merge runs that share a visual line, segment lines into blocks, and
// finally classify each block as a heading, list item, or paragraph. Each
// stage consumes only the output of the stage before it, so the stages can
// be exercised independently in tests.
//
// The thresholds used by the stages (margin bands, gutter widths, line
// jitter, block gaps) are declared as constants next to the stage that
// uses them. They are tuned for the coordinate space of pdftohtml's XML
// dumps and are deliberately crude: this package favors predictable
// behavior on ordinary reports and manuals over perfect handling of
// exotic layouts.
package layout
