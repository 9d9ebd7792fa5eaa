package dump

import (
	"fmt"
	"math"

	"github.com/arminms/hashkat-v2/kmc/action"
	"github.com/arminms/hashkat-v2/kmc/network"
)

// writeCategoriesDistro writes Categories_Distro.dat: the global bin
// population snapshot, one "count at index" pair for every bin from 0 to
// kmax, empty bins included.
func writeCategoriesDistro(folder string, follow *action.Follow) error {
	f, err := openTrunc(folder, "Categories_Distro.dat")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDumpIO, err)
	}
	defer f.Close()

	fmt.Fprint(f, "Following | ")
	for i, n := range follow.BinPopulations() {
		fmt.Fprintf(f, "%d at %d|\t", n, i)
	}
	fmt.Fprintln(f)
	return nil
}

// writeDegreeDistributionByFollowModel writes dd_by_follow_model.dat: for
// each possible total degree, the normalized probability and its log,
// broken down by the seven follow methods.
func writeDegreeDistributionByFollowModel(folder string, net *network.Network, follow *action.Follow) error {
	f, err := openTrunc(folder, "dd_by_follow_model.dat")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDumpIO, err)
	}
	defer f.Close()

	fmt.Fprint(f, "This is the degree distribution by follow model. The data order is:\n"+
		"# degree\tlog_of_degree\tRandom\tTwitter_Suggest\tAgent\tPreferential_Agent"+
		"\tHashtag\tRetweet\tFollowbacks (normalized probability, log of normalized probability)\n\n")

	n := net.Size()
	if n == 0 {
		return nil
	}

	maxDegree := 0
	for i := 0; i < n; i++ {
		sum := net.FolloweesSize(i) + net.FollowersSize(i)
		if sum+1 > maxDegree {
			maxDegree = sum + 1
		}
	}

	counts := make([][7]float64, maxDegree)
	for i := 0; i < n; i++ {
		asFollowee, asFollower := follow.MethodCounts(i)
		for m := 0; m < 7; m++ {
			degree := int(asFollowee[m] + asFollower[m])
			if degree < maxDegree {
				counts[degree][m]++
			}
		}
	}

	for d := 0; d < maxDegree; d++ {
		fmt.Fprintf(f, "%d\t%s", d, logOrNeg(float64(d)))
		for m := 0; m < 7; m++ {
			p := counts[d][m] / float64(n)
			fmt.Fprintf(f, "\t%.6e\t%s", p, logOrNeg(p))
		}
		fmt.Fprintln(f)
	}
	return nil
}

func logOrNeg(x float64) string {
	if x <= 0 {
		return "-Inf"
	}
	return fmt.Sprintf("%.6e", math.Log(x))
}
