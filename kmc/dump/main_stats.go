package dump

import (
	"fmt"

	"github.com/arminms/hashkat-v2/kmc/action"
	"github.com/arminms/hashkat-v2/kmc/network"
)

var methodNames = [7]string{
	"Random", "Twitter_Suggest", "Agent", "Preferential_Agent",
	"Hashtag", "Retweet", "Followbacks",
}

// writeMainStats writes main_stats.dat: agent-type population totals
// followed by follow totals broken down by model, matching the historical
// do_dump layout (including the reserved "Retweet: 0" line, never produced
// by any model).
func writeMainStats(folder string, net *network.Network, follow *action.Follow) error {
	f, err := openTrunc(folder, "main_stats.dat")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDumpIO, err)
	}
	defer f.Close()

	fmt.Fprint(f, "+--------------------+\n| MAIN NETWORK STATS |\n+--------------------+\n\n")
	fmt.Fprint(f, "USERS\n_____\n\n")

	total := net.Size()
	fmt.Fprintf(f, "Total: %d\n", total)
	types := follow.Types()
	for i, t := range types {
		count := net.Count(i)
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(count) / float64(total)
		}
		fmt.Fprintf(f, "%s: %d\t(%.2f%% of total agents)\n", t.Name, count, pct)
	}
	fmt.Fprintln(f)

	fmt.Fprint(f, "FOLLOWS\n_______\n\n")
	totalFollows := int64(0)
	for i := range types {
		totalFollows += follow.TypeFollowCount(i)
	}
	fmt.Fprintf(f, "Total follows: %d\n", totalFollows)

	perMethod := aggregateMethodAttempts(net, follow)
	var sum int64
	for _, c := range perMethod {
		sum += c
	}
	for m, name := range methodNames {
		pct := 0.0
		if sum > 0 {
			pct = 100 * float64(perMethod[m]) / float64(sum)
		}
		fmt.Fprintf(f, "%s: %d\t(%.2f%% of total follow attempts)\n", name, perMethod[m], pct)
	}

	for i, t := range types {
		count := follow.TypeFollowCount(i)
		pct := 0.0
		if totalFollows > 0 {
			pct = 100 * float64(count) / float64(totalFollows)
		}
		fmt.Fprintf(f, "%s: %d\t(%.2f%% of total follows)\n", t.Name, count, pct)
	}
	return nil
}

// aggregateMethodAttempts sums, across every agent's followee-side method
// counters, the per-method follow totals used by main_stats.dat.
func aggregateMethodAttempts(net *network.Network, follow *action.Follow) [7]int64 {
	var totals [7]int64
	for id := 0; id < net.Size(); id++ {
		asFollowee, _ := follow.MethodCounts(id)
		for m := 0; m < 7; m++ {
			totals[m] += asFollowee[m]
		}
	}
	return totals
}
