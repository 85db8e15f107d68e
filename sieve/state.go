package sieve

import (
	"github.com/katalvlaran/infosieve/corex"
	"github.com/katalvlaran/infosieve/remainder"
)

// State is the serializable snapshot of a fitted Sieve. Snapshots only cover
// sieves using the built-in corex and remainder models; custom factories
// carry unknown state and yield ErrUnsupportedModel.
type State struct {
	MaxLayers int           `json:"max_layers"`
	KMax      int           `json:"k_max"`
	CorEx     corex.Options `json:"corex"`
	NVars     int           `json:"n_vars"`
	OrigCards []int         `json:"orig_cards"`
	XStats    [][]int       `json:"x_stats"`
	Status    Status        `json:"status"`
	Layers    []LayerState  `json:"layers"`
}

// LayerState snapshots one layer.
type LayerState struct {
	Extractor  corex.State       `json:"extractor"`
	Labels     []int             `json:"labels"`
	Remainders []remainder.State `json:"remainders"`
}

// State snapshots a fitted Sieve for persistence.
func (s *Sieve) State() (*State, error) {
	if len(s.layers) == 0 {
		return nil, ErrNotFitted
	}
	st := &State{
		MaxLayers: s.opts.MaxLayers,
		KMax:      s.opts.KMax,
		CorEx:     s.opts.CorEx,
		NVars:     s.nVars,
		OrigCards: s.origCards,
		XStats:    s.xStats,
		Status:    s.status,
		Layers:    make([]LayerState, len(s.layers)),
	}
	for k, layer := range s.layers {
		ext, ok := layer.extractor.(*corex.CorEx)
		if !ok {
			return nil, ErrUnsupportedModel
		}
		extState, err := ext.State()
		if err != nil {
			return nil, err
		}
		ls := LayerState{
			Extractor:  extState,
			Labels:     layer.labels,
			Remainders: make([]remainder.State, len(layer.remainders)),
		}
		for j, rm := range layer.remainders {
			r, ok := rm.(*remainder.Remainder)
			if !ok {
				return nil, ErrUnsupportedModel
			}
			ls.Remainders[j] = r.State()
		}
		st.Layers[k] = ls
	}
	return st, nil
}

// FromState reconstructs a fitted Sieve from a snapshot.
func FromState(st *State) (*Sieve, error) {
	s := New(Options{MaxLayers: st.MaxLayers, KMax: st.KMax, CorEx: st.CorEx})
	if err := s.opts.validate(); err != nil {
		return nil, err
	}
	s.nVars = st.NVars
	s.origCards = st.OrigCards
	s.xStats = st.XStats
	s.status = st.Status
	s.layers = make([]*Layer, len(st.Layers))
	for k, ls := range st.Layers {
		ext, err := corex.FromState(ls.Extractor)
		if err != nil {
			return nil, err
		}
		layer := &Layer{
			extractor:  ext,
			labels:     ls.Labels,
			remainders: make([]RemainderModel, len(ls.Remainders)),
		}
		for j, rs := range ls.Remainders {
			rm, err := remainder.FromState(rs)
			if err != nil {
				return nil, err
			}
			layer.remainders[j] = rm
		}
		s.layers[k] = layer
	}
	return s, nil
}
