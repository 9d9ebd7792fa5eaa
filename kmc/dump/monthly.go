package dump

import (
	"fmt"

	"github.com/arminms/hashkat-v2/kmc/action"
	"github.com/arminms/hashkat-v2/kmc/engine"
	"github.com/arminms/hashkat-v2/kmc/network"
)

// writeMonthlyDegreeDistributions writes out/in/cumulative-degree_distribution
// _month_NNN.dat for the current month boundary, matching
// save_degree_distributions.
func writeMonthlyDegreeDistributions(folder string, net *network.Network, eng *engine.Engine) error {
	month := action.MonthIndex(eng.Time())
	n := net.Size()
	if n == 0 {
		return nil
	}

	maxOut, maxIn := 0, 0
	for i := 0; i < n; i++ {
		if net.FolloweesSize(i)+1 > maxOut {
			maxOut = net.FolloweesSize(i) + 1
		}
		if net.FollowersSize(i)+1 > maxIn {
			maxIn = net.FollowersSize(i) + 1
		}
	}
	maxDegree := maxOut + maxIn

	outDistro := make([]int, maxOut)
	inDistro := make([]int, maxIn)
	cumDistro := make([]int, maxDegree)
	for i := 0; i < n; i++ {
		out := net.FolloweesSize(i)
		in := net.FollowersSize(i)
		outDistro[out]++
		inDistro[in]++
		cumDistro[out+in]++
	}

	if err := writeDistro(folder, fmt.Sprintf("out-degree_distribution_month_%03d.dat", month),
		"This is the out-degree distribution.", outDistro, n); err != nil {
		return err
	}
	if err := writeDistro(folder, fmt.Sprintf("in-degree_distribution_month_%03d.dat", month),
		"This is the in-degree distribution.", inDistro, n); err != nil {
		return err
	}
	return writeDistro(folder, fmt.Sprintf("cumulative-degree_distribution_month_%03d.dat", month),
		"This is the cumulative degree distribution.", cumDistro, n)
}

func writeDistro(folder, filename, header string, distro []int, n int) error {
	f, err := openTrunc(folder, filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDumpIO, err)
	}
	defer f.Close()

	fmt.Fprintf(f, "# %s The data order is:\n# degree, normalized probability, log of degree, log of normalized probability\n\n", header)
	for i, count := range distro {
		p := float64(count) / float64(n)
		fmt.Fprintf(f, "%d\t%.6e\t%s\t%s\n", i, p, logOrNeg(float64(i)), logOrNeg(p))
	}
	return nil
}
