// Package api defines the wire messages of the SplitPayment RPC services.
//
// Messages are encoded as JSON with camelCase field names. Money travels as a
// decimal string with exactly two fractional digits ("12.50", "-3.33") so no
// client ever rounds through a float. Dates use the "2006-01-02" layout and
// timestamps are Unix seconds.
package api

// DateLayout is the wire format of calendar dates such as a folder's start date.
const DateLayout = "2006-01-02"
