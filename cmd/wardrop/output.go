package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/wardrop/metrics"
	"github.com/katalvlaran/wardrop/network"
)

// writeFlows writes one row per link:
//
//	link_id;from;to;capacity;fftt;flow;cost;cost_ratio;vc;flow_<class>...
func writeFlows(path string, g *network.Graph, sol *solution) error {
	cost, err := metrics.Cost(g, sol.total)
	if err != nil {
		return errors.Wrap(err, "link costs")
	}
	ratio, err := metrics.CostRatio(g, sol.total)
	if err != nil {
		return errors.Wrap(err, "cost ratios")
	}
	vc, err := metrics.VolumeCapacity(g, sol.total)
	if err != nil {
		return errors.Wrap(err, "volume/capacity")
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	writer.Comma = ';'

	header := []string{"link_id", "from", "to", "capacity", "fftt", "flow", "cost", "cost_ratio", "vc"}
	if len(sol.classes) > 1 {
		for _, c := range sol.classes {
			header = append(header, "flow_"+c.Name)
		}
	}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "write header")
	}

	for i := 0; i < g.NumLinks(); i++ {
		l := g.Link(i)
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(l.From),
			strconv.Itoa(l.To),
			formatFloat(l.Capacity),
			formatFloat(l.FreeFlowTime),
			formatFloat(sol.total[i]),
			formatFloat(cost[i]),
			formatFloat(ratio[i]),
			formatFloat(vc[i]),
		}
		if len(sol.classes) > 1 {
			for _, c := range sol.classes {
				row = append(row, formatFloat(c.Flow[i]))
			}
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "write link %d", i)
		}
	}
	writer.Flush()

	return errors.Wrap(writer.Error(), "flush output")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
