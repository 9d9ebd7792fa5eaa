package dump

import (
	"fmt"

	"github.com/arminms/hashkat-v2/kmc/action"
	"github.com/arminms/hashkat-v2/kmc/network"
)

// writeAgentTypeInfo writes one <agent_type>_info.dat per configured type:
// cross-type who-follows-whom percentages, then in-/out-/cumulative degree
// distributions normalized by that type's population.
func writeAgentTypeInfo(folder string, net *network.Network, follow *action.Follow) error {
	types := follow.Types()
	for i, t := range types {
		if err := writeOneAgentTypeInfo(folder, net, follow, i, t.Name); err != nil {
			return err
		}
	}
	return nil
}

func writeOneAgentTypeInfo(folder string, net *network.Network, follow *action.Follow, typeIndex int, name string) error {
	f, err := openTrunc(folder, name+"_info.dat")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDumpIO, err)
	}
	defer f.Close()

	types := follow.Types()
	count := net.Count(typeIndex)

	maxDegree := 0
	for j := 0; j < count; j++ {
		id, _ := net.AgentByType(typeIndex, j)
		degree := net.FolloweesSize(id) + net.FollowersSize(id)
		if degree > maxDegree {
			maxDegree = degree
		}
	}

	inDistro := make([]int, maxDegree+1)
	outDistro := make([]int, maxDegree+1)
	cumDistro := make([]int, maxDegree+1)
	whoFollowees := make([]int, len(types)) // types that follow this type's agents
	whoFollowers := make([]int, len(types)) // types this type's agents follow
	var followeesSum, followersSum int

	for j := 0; j < count; j++ {
		id, _ := net.AgentByType(typeIndex, j)
		in := net.FollowersSize(id)
		out := net.FolloweesSize(id)
		inDistro[in]++
		outDistro[out]++
		cumDistro[in+out]++

		for _, follower := range net.FollowerSet(id) {
			whoFollowees[net.AgentType(follower)]++
			followeesSum++
		}
		for _, followee := range net.FolloweeSet(id) {
			whoFollowers[net.AgentType(followee)]++
			followersSum++
		}
	}

	fmt.Fprintf(f, "# Agent percentages following agent type '%s'\n# ", name)
	for j, t := range types {
		pct := 0.0
		if followeesSum > 0 {
			pct = float64(whoFollowees[j]) / float64(followeesSum) * 100
		}
		fmt.Fprintf(f, "%s: %.4f   ", t.Name, pct)
	}

	fmt.Fprintf(f, "\n# Agent percentages that agent type '%s' follows\n# ", name)
	for j, t := range types {
		pct := 0.0
		if followersSum > 0 {
			pct = float64(whoFollowers[j]) / float64(followersSum) * 100
		}
		fmt.Fprintf(f, "%s: %.4f   ", t.Name, pct)
	}

	fmt.Fprint(f, "\n# degree\tin_degree\tout_degree\tcumulative\tlog(degree)\tlog(in_degree)\tlog(out_degree)\tlog(cumulative)\n\n")
	for j := 0; j <= maxDegree; j++ {
		denom := float64(count)
		if denom == 0 {
			denom = 1
		}
		in := float64(inDistro[j]) / denom
		out := float64(outDistro[j]) / denom
		cum := float64(cumDistro[j]) / denom
		fmt.Fprintf(f, "%d\t%.6f\t%.6f\t%.6f\t%s\t%s\t%s\t%s\n",
			j, in, out, cum, logOrNeg(float64(j)), logOrNeg(in), logOrNeg(out), logOrNeg(cum))
	}
	return nil
}
