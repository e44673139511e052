/*
Package sheetkit reads, updates and formats Google Sheets worksheets from the
command line and from Go programs.

The a1 package parses and manipulates A1 notation ranges, the sheet package
wraps the Google Sheets v4 API (values, formatting, borders, merges and
batched updates) and the auth package manages the OAuth2 installed-app flow.

sheetkit supports the following commands:

  - authorise, to authorise application access to the Google Sheets and Drive APIs
  - select, to print the cell values in a range as tab-separated text
  - get, to download a worksheet range to a TSV file
  - put, to upload a TSV file to a worksheet range
  - update, to write tab-separated values from stdin to a range
  - clear, to clear the cell values in a range
  - border, to draw or clear cell borders on a range
  - merge, to merge or unmerge the cells in a range
  - worksheets, to list the worksheets in a spreadsheet
  - revision, to print the spreadsheet's latest revision
*/
package sheetkit
