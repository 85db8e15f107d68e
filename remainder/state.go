package remainder

import "sort"

// State is the serializable snapshot of a fitted residual model. The
// internal maps are flattened into sorted slices so the encoding is stable
// across runs.
type State struct {
	KMax       int       `json:"k_max"`
	Codes      [][3]int  `json:"codes"`  // (label, value, code) triples, sorted
	Decode     []Decoder `json:"decode"` // per-label representatives, label ascending
	GlobalMode int       `json:"global_mode"`
	Card       int       `json:"card"`
	MI         float64   `json:"mi"`
	H          float64   `json:"h"`
}

// Decoder carries one label's representative values in code (rank) order.
type Decoder struct {
	Label int   `json:"label"`
	Reps  []int `json:"reps"`
}

// State snapshots the model.
func (r *Remainder) State() State {
	st := State{
		KMax:       r.kMax,
		Codes:      make([][3]int, 0, len(r.codes)),
		Decode:     make([]Decoder, 0, len(r.decode)),
		GlobalMode: r.globalMode,
		Card:       r.card,
		MI:         r.mi,
		H:          r.h,
	}
	for p, z := range r.codes {
		st.Codes = append(st.Codes, [3]int{p.y, p.x, z})
	}
	sort.Slice(st.Codes, func(i, j int) bool {
		if st.Codes[i][0] != st.Codes[j][0] {
			return st.Codes[i][0] < st.Codes[j][0]
		}
		return st.Codes[i][1] < st.Codes[j][1]
	})
	for y, reps := range r.decode {
		st.Decode = append(st.Decode, Decoder{Label: y, Reps: reps})
	}
	sort.Slice(st.Decode, func(i, j int) bool { return st.Decode[i].Label < st.Decode[j].Label })
	return st
}

// FromState reconstructs a fitted model from a snapshot.
func FromState(st State) (*Remainder, error) {
	if st.KMax < 1 {
		return nil, ErrBadCardinality
	}
	r := &Remainder{
		kMax:       st.KMax,
		codes:      make(map[pair]int, len(st.Codes)),
		decode:     make(map[int][]int, len(st.Decode)),
		globalMode: st.GlobalMode,
		card:       st.Card,
		mi:         st.MI,
		h:          st.H,
	}
	for _, c := range st.Codes {
		r.codes[pair{c[0], c[1]}] = c[2]
	}
	for _, d := range st.Decode {
		r.decode[d.Label] = d.Reps
	}
	return r, nil
}
