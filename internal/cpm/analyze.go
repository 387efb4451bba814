package cpm

// Analyze runs the critical path method over g.
//
// Forward pass in topological order: ES is 0 without predecessors, else the max EF
// of the predecessors; EF = ES + duration. The horizon is the max EF. Backward pass
// in reverse order: LF is the horizon without successors, else the min LS of the
// successors; LS = LF - duration. Slack is LS - ES and zero slack marks a critical node.
//
// Edges naming unknown nodes are dropped and duplicate node ids keep their first
// occurrence. Cycles never fail the analysis: see Sequence. Across a skipped back
// edge a predecessor without EF yet counts as 0 and a successor without LS yet
// counts as the horizon.
func Analyze(g Graph) *Result {
	ids := make([]string, 0, len(g.Nodes))
	durations := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, dup := durations[n.ID]; dup {
			continue
		}
		ids = append(ids, n.ID)
		durations[n.ID] = n.Duration
	}

	preds := make(map[string][]string, len(ids))
	succs := make(map[string][]string, len(ids))
	for _, e := range g.Edges {
		_, okFrom := durations[e.From]
		_, okTo := durations[e.To]
		if !okFrom || !okTo {
			continue
		}
		succs[e.From] = append(succs[e.From], e.To)
		preds[e.To] = append(preds[e.To], e.From)
	}

	order, hasCycle := Sequence(ids, preds)

	result := &Result{
		Tasks:     make(map[string]*TaskSchedule, len(ids)),
		TopoOrder: order,
		HasCycle:  hasCycle,
	}

	// Forward pass
	forwarded := make(map[string]bool, len(ids))
	for _, id := range order {
		es := 0
		for _, p := range preds[id] {
			if forwarded[p] && result.Tasks[p].EF > es {
				es = result.Tasks[p].EF
			}
		}
		result.Tasks[id] = &TaskSchedule{
			TaskID:   id,
			Duration: durations[id],
			ES:       es,
			EF:       es + durations[id],
		}
		forwarded[id] = true
	}

	horizon := 0
	for i, id := range order {
		if ef := result.Tasks[id].EF; i == 0 || ef > horizon {
			horizon = ef
		}
	}
	result.TotalDuration = horizon

	// Backward pass
	backwarded := make(map[string]bool, len(ids))
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		ts := result.Tasks[id]

		lf := horizon
		for j, s := range succs[id] {
			ls := horizon
			if backwarded[s] {
				ls = result.Tasks[s].LS
			}
			if j == 0 || ls < lf {
				lf = ls
			}
		}
		ts.LF = lf
		ts.LS = lf - ts.Duration
		ts.Slack = ts.LS - ts.ES
		ts.IsCritical = ts.Slack == 0
		backwarded[id] = true
	}

	for _, id := range ids {
		if result.Tasks[id].IsCritical {
			result.CriticalPath = append(result.CriticalPath, id)
		}
	}

	return result
}
