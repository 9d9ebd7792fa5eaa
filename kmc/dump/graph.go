package dump

import (
	"fmt"

	"github.com/arminms/hashkat-v2/kmc/network"
)

// writeGraphExports writes network.dat (a plain edge list), network.gexf,
// and network.graphml: the three directed-graph dumps gated on
// output.visualize.
func writeGraphExports(folder string, net *network.Network) error {
	if err := writeEdgeList(folder, net); err != nil {
		return err
	}
	if err := writeGEXF(folder, net); err != nil {
		return err
	}
	return writeGraphML(folder, net)
}

func writeEdgeList(folder string, net *network.Network) error {
	f, err := openTrunc(folder, "network.dat")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDumpIO, err)
	}
	defer f.Close()

	fmt.Fprint(f, "# Agent ID\tFollower ID\n\n")
	for id := 0; id < net.Size(); id++ {
		for _, follower := range net.FollowerSet(id) {
			fmt.Fprintf(f, "%d\t%d\n", id, follower)
		}
	}
	return nil
}

func writeGEXF(folder string, net *network.Network) error {
	f, err := openTrunc(folder, "network.gexf")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDumpIO, err)
	}
	defer f.Close()

	fmt.Fprint(f, "<gexf version=\"1.2\">\n"+
		"<meta><creator>hashkat-v2</creator>"+
		"<description>social network simulator</description></meta>\n"+
		"<graph mode=\"static\" defaultedgetype=\"directed\">\n<nodes>\n")
	for id := 0; id < net.Size(); id++ {
		fmt.Fprintf(f, "<node id=\"%d\" label=\"%d\" />\n", id, net.AgentType(id))
	}
	fmt.Fprint(f, "</nodes>\n<edges>\n")
	var count int
	for id := 0; id < net.Size(); id++ {
		for _, followee := range net.FolloweeSet(id) {
			fmt.Fprintf(f, "<edge id=\"%d\" source=\"%d\" target=\"%d\"/>\n", count, id, followee)
			count++
		}
	}
	fmt.Fprint(f, "</edges>\n</graph>\n</gexf>")
	return nil
}

func writeGraphML(folder string, net *network.Network) error {
	f, err := openTrunc(folder, "network.graphml")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDumpIO, err)
	}
	defer f.Close()

	fmt.Fprint(f, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<graphml>\n\t<graph id=\"G\" edgedefault=\"directed\">\n")
	for id := 0; id < net.Size(); id++ {
		fmt.Fprintf(f, "\t\t<node id=\"%d\" label=\"%d\" />\n", id, net.AgentType(id))
	}
	var count int
	for id := 0; id < net.Size(); id++ {
		for _, followee := range net.FolloweeSet(id) {
			fmt.Fprintf(f, "\t\t<edge id=\"%d\" source=\"%d\" target=\"%d\"/>\n", count, id, followee)
			count++
		}
	}
	fmt.Fprint(f, "\t</graph>\n</graphml>")
	return nil
}
