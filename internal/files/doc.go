// Package files provides discovery and management of forecast workbooks
// and generated report files on disk.
//
// Discovery locates the forecast workbook to process: the most recently
// modified .xlsx in the forecast directory, ignoring Excel lock files.
// Manager handles the reports directory lifecycle, including retention
// cleanup of previously generated workbooks.
package files
