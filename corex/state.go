package corex

// State is the serializable snapshot of a fitted extractor. All fields are
// plain data so the struct round-trips through encoding/json unchanged.
type State struct {
	Options Options       `json:"options"`
	NVars   int           `json:"n_vars"`
	Cards   []int         `json:"cards"`
	LogPy   []float64     `json:"log_py"`
	LogPxgy [][][]float64 `json:"log_pxgy"`
	Labels  []int         `json:"labels"`
	TC      float64       `json:"tc"`
	MIs     []float64     `json:"mis"`
}

// State snapshots a fitted extractor. Returns ErrNotFitted before Fit.
func (c *CorEx) State() (State, error) {
	if !c.fitted {
		return State{}, ErrNotFitted
	}
	return State{
		Options: c.opts,
		NVars:   c.nVars,
		Cards:   c.cards,
		LogPy:   c.logPy,
		LogPxgy: c.logPxgy,
		Labels:  c.labels,
		TC:      c.tc,
		MIs:     c.mis,
	}, nil
}

// FromState reconstructs a fitted extractor from a snapshot.
func FromState(st State) (*CorEx, error) {
	if err := st.Options.validate(); err != nil {
		return nil, err
	}
	return &CorEx{
		opts:    st.Options,
		fitted:  true,
		nVars:   st.NVars,
		cards:   st.Cards,
		logPy:   st.LogPy,
		logPxgy: st.LogPxgy,
		labels:  st.Labels,
		tc:      st.TC,
		mis:     st.MIs,
	}, nil
}
