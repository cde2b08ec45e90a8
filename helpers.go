package x690

/*
helpers.go contains small string/formatting helpers shared by the TLV
and Element layers. Grounded on the teacher's common.go alias block.
*/

import "strconv"

func itoaSimple(n int) string { return strconv.Itoa(n) }

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
