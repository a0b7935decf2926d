package yahoo

import "strings"

// suffixVariants lists exchange suffixes whose instruments Yahoo has served
// under an alternate code over time. Nairobi Securities Exchange tickers in
// particular appear under either ".KE" or ".NR" depending on the listing
// vintage. The table is the only suffix knowledge in the system: the fetch
// layer retries a no-data ticker once under its variant, and nothing else
// ever guesses at symbols.
var suffixVariants = map[string]string{
	".KE": ".NR",
	".NR": ".KE",
}

// variant returns the alternate spelling of a ticker, if its exchange suffix
// has one.
func variant(ticker string) (string, bool) {
	i := strings.LastIndex(ticker, ".")
	if i < 0 {
		return "", false
	}
	alt, ok := suffixVariants[strings.ToUpper(ticker[i:])]
	if !ok {
		return "", false
	}
	return ticker[:i] + alt, true
}
