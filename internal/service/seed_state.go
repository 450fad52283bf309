package service

import "fmt"

// State es el estado de una corrida del seed.
//
//	Disconnected -> Connecting -> Connected -> Resetting -> Transforming -> Loading -> Done
//
// Cualquier fallo pasa a Failed. Done y Failed son terminales.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateResetting
	StateTransforming
	StateLoading
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateDisconnected: "Disconnected",
	StateConnecting:   "Connecting",
	StateConnected:    "Connected",
	StateResetting:    "Resetting",
	StateTransforming: "Transforming",
	StateLoading:      "Loading",
	StateDone:         "Done",
	StateFailed:       "Failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// MarshalText para que el resumen en JSON lleve el nombre y no el número.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	for i, name := range stateNames {
		if name == string(b) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("estado desconocido %q", string(b))
}

// StepError indica en qué paso se cortó la corrida.
type StepError struct {
	Step State
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("seed falló en %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
