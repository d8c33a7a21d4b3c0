// Package csvlog reads AiM data-logger CSV exports.
//
// An export starts with two-cell "key","value" metadata rows, followed by a
// header row of channel names, a row of units, and the sample rows:
//
//	"Format","AiM CSV File"
//	"Sample Rate","20"
//	"Time","RPM","Speed"
//	"s","rpm","km/h"
//	0.00,3012,121.5
//	0.05,3020,121.7
//
// Blank rows are ignored anywhere. A column that holds any empty or non-numeric
// cell is dropped. Every kept column becomes a floating-point channel for ldlog.
package csvlog
