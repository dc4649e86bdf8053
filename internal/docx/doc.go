// Package docx implements the OOXML template and output layer: opening a
// .docx template, extracting its named style catalog (latent styles
// included), appending synthesized style definitions into a new template
// artifact, and rendering a styled block sequence into a finished document.
//
// The package speaks the WordprocessingML subset the converter needs
// directly over archive/zip and encoding/xml; it is not a general OOXML
// library.
package docx
