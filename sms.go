package monies

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"github.com/PaesslerAG/jsonpath"
)

/*
	An SMS inbox dump is a JSON array of message objects, newest first:

	[
	    {
	        "address": "MPESA",
	        "date": 1755081600000,
	        "body": "TAE3... Confirmed. Ksh500.00 sent. New M-PESA balance is KSh4,500.00 ..."
	    }
	]
*/

// balancePattern matches the balance statement in an M-PESA confirmation SMS.
var balancePattern = regexp.MustCompile(`New M-PESA balance is KSh([\d,]+\.\d{2})`)

// LatestSMSBalance scans an SMS inbox dump for the newest M-PESA balance
// statement and returns it as a suggestion. The reading is external advice
// only and is never applied to the ledger. ok is false when no message in
// the dump carries a balance.
func LatestSMSBalance(r io.Reader) (balance Money, ok bool, err error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return Money{}, false, fmt.Errorf("could not parse sms dump: %w", err)
	}

	path := "$[*].body"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, false, fmt.Errorf("could not select message bodies: %q %w", path, err)
	}
	bodies, ok := jval.([]any)
	if !ok {
		return Money{}, false, fmt.Errorf("unexpected sms dump shape: %T", jval)
	}

	// Dumps are newest first, so the first match is the latest reading.
	for _, jbody := range bodies {
		body, ok := jbody.(string)
		if !ok {
			continue
		}
		match := balancePattern.FindStringSubmatch(body)
		if match == nil {
			continue
		}
		// Normalize strips the thousands separators.
		return Normalize(match[1]), true, nil
	}
	return Money{}, false, nil
}
