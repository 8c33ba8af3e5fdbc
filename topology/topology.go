// Package topology describes transit networks as data: the built-in
// Hyderabad network and YAML network files.
//
// File format:
//
//	fare:                # optional; missing keys keep the defaults (10, 2)
//	  base: 10
//	  rate_per_km: 2
//	edges:
//	  - {from: Ameerpet, to: Punjagutta, distance: 5}
//	  - {from: Punjagutta, to: Irrum Manzil, distance: 3}
//
// Unknown keys are rejected. Every edge needs two non-empty station names and
// a non-negative distance, and a file must contain at least one edge.
package topology

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/metrofare/fare"
	"github.com/katalvlaran/metrofare/metro"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for network validation.
var (
	// ErrEmptyStation indicates an edge with an empty endpoint name.
	ErrEmptyStation = errors.New("topology: empty station name")

	// ErrNegativeDistance indicates an edge with a negative distance.
	ErrNegativeDistance = errors.New("topology: negative distance")

	// ErrNoEdges indicates a network without edges.
	ErrNoEdges = errors.New("topology: network has no edges")
)

// Edge is one undirected segment of a network description.
type Edge struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Distance int64  `yaml:"distance"`
}

// Spec is a validated network description.
type Spec struct {
	// Fare is nil when the description carries no fare section.
	Fare  *fare.Policy `yaml:"fare,omitempty"`
	Edges []Edge       `yaml:"edges"`
}

// document mirrors the file layout; pointers tell absent keys from zeros.
type document struct {
	Fare *struct {
		Base      *int64 `yaml:"base"`
		RatePerKm *int64 `yaml:"rate_per_km"`
	} `yaml:"fare"`
	Edges []Edge `yaml:"edges"`
}

// Load decodes and validates a YAML network description from r.
func Load(r io.Reader) (*Spec, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoEdges
		}

		return nil, fmt.Errorf("topology: decode: %w", err)
	}

	s := &Spec{Edges: doc.Edges}
	if doc.Fare != nil {
		p := fare.Default()
		if doc.Fare.Base != nil {
			p.BaseFare = *doc.Fare.Base
		}
		if doc.Fare.RatePerKm != nil {
			p.RatePerKm = *doc.Fare.RatePerKm
		}
		s.Fare = &p
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("topology: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Validate checks the fare policy and every edge.
func (s *Spec) Validate() error {
	if s.Fare != nil {
		if err := s.Fare.Validate(); err != nil {
			return fmt.Errorf("topology: fare: %w", err)
		}
	}
	if len(s.Edges) == 0 {
		return ErrNoEdges
	}
	for i, e := range s.Edges {
		switch {
		case e.From == "" || e.To == "":
			return fmt.Errorf("edge %d (%q-%q): %w", i, e.From, e.To, ErrEmptyStation)
		case e.Distance < 0:
			return fmt.Errorf("edge %d (%q-%q, distance=%d): %w", i, e.From, e.To, e.Distance, ErrNegativeDistance)
		}
	}

	return nil
}

// FarePolicy returns the described policy, or fare.Default when the
// description has none.
func (s *Spec) FarePolicy() fare.Policy {
	if s.Fare == nil {
		return fare.Default()
	}

	return *s.Fare
}

// Build validates s and creates a Network with its edges in order. The
// described fare policy is applied before opts, so opts may override it.
func (s *Spec) Build(opts ...metro.Option) (*metro.Network, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	all := make([]metro.Option, 0, len(opts)+2)
	all = append(all, metro.WithFare(s.FarePolicy()), metro.WithCapacity(2*len(s.Edges)))
	all = append(all, opts...)

	n := metro.New(all...)
	for _, e := range s.Edges {
		if err := n.AddEdge(e.From, e.To, e.Distance); err != nil {
			return nil, fmt.Errorf("topology: build: %w", err)
		}
	}

	return n, nil
}
