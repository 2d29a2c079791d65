// Package app wires the reporting pipeline together: forecast discovery,
// data processing, workbook export, HTML rendering and email delivery,
// executed as ordered steps with one summary per run.
package app
