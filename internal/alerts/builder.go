// Package alerts builds the per-subscriber alert list: the fixed holiday
// table plus every visible person's dates, filtered to the lookahead window
// and sorted by proximity.
package alerts

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"dateminder/internal/dates"
	"dateminder/internal/types"
)

// Build computes the alerts visible to one subscriber.
//
// Under types.ScopeOwner, a person with a non-empty OwnerEmail is skipped
// entirely unless it matches subscriberEmail case-insensitively. Persons with
// no OwnerEmail are legacy records visible to every subscriber. Under
// types.ScopeBroadcast the ownership filter is disabled and subscriberEmail
// is ignored.
//
// Date strings that fail to parse are skipped; a bad record must not block
// the rest of the digest.
//
// The result is sorted ascending by days, stable: entries keep insertion
// order on ties, and global dates are inserted before personal ones.
func Build(now time.Time, people []types.Person, mode types.ScopeMode, subscriberEmail string, lookaheadDays int) []types.Alert {
	var out []types.Alert

	include := func(label string, days int) {
		if days <= lookaheadDays {
			out = append(out, types.Alert{Label: label, Days: days})
		}
	}

	for _, g := range GlobalDates {
		include(g.Name, dates.DaysUntilFixed(now, g.Month, g.Day))
	}

	for _, p := range people {
		if mode == types.ScopeOwner && p.OwnerEmail != "" && !strings.EqualFold(p.OwnerEmail, subscriberEmail) {
			continue
		}

		candidate := func(label, value string) {
			if value == "" {
				return
			}
			days, err := dates.DaysUntil(now, value)
			if err != nil {
				return
			}
			include(label, days)
		}

		candidate(p.Name+"'s Birthday", p.Birthday)
		candidate(p.Name+"'s Anniversary", p.Anniversary)
		for _, c := range p.Custom {
			candidate(fmt.Sprintf("%s (%s)", c.Label, p.Name), c.Date)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out
}
