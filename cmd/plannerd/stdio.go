package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/openadas/latplanner/internal/message"
)

// tickInput is the JSON-lines wire shape read from stdin: one object
// per tick, matching the bus inputs. The real bus this
// module is meant to sit behind is external; this is a
// minimal, dependency-free transport for standalone/test runs.
type tickInput struct {
	Car      message.CarState       `json:"car"`
	Controls message.ControlsState  `json:"controls"`
	Params   message.LiveParameters `json:"params"`
	Model    json.RawMessage        `json:"model"`
	Alive    message.Alive          `json:"alive"`
}

// stdioSource reads one tickInput per line from an io.Reader.
type stdioSource struct {
	scanner *bufio.Scanner
}

func newStdioSource(r io.Reader) *stdioSource {
	return &stdioSource{scanner: bufio.NewScanner(r)}
}

func (s *stdioSource) Next(ctx context.Context) (message.CarState, message.ControlsState, message.LiveParameters, message.Model, message.Alive, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return message.CarState{}, message.ControlsState{}, message.LiveParameters{}, message.Model{}, message.Alive{}, err
		}
		return message.CarState{}, message.ControlsState{}, message.LiveParameters{}, message.Model{}, message.Alive{}, io.EOF
	}

	var in tickInput
	if err := json.Unmarshal(s.scanner.Bytes(), &in); err != nil {
		return message.CarState{}, message.ControlsState{}, message.LiveParameters{}, message.Model{}, message.Alive{}, fmt.Errorf("decode tick input: %w", err)
	}

	return in.Car, in.Controls, in.Params, message.Model{Raw: in.Model}, in.Alive, nil
}

// tickOutput is the JSON-lines wire shape written to stdout.
type tickOutput struct {
	PathPlan message.PathPlan `json:"pathPlan"`
	LiveMpc  *message.LiveMpc `json:"liveMpc,omitempty"`
}

// stdioSink writes one tickOutput per line to an io.Writer.
type stdioSink struct {
	enc *json.Encoder
}

func newStdioSink(w io.Writer) *stdioSink {
	return &stdioSink{enc: json.NewEncoder(w)}
}

func (s *stdioSink) Publish(plan message.PathPlan, live *message.LiveMpc) {
	if err := s.enc.Encode(tickOutput{PathPlan: plan, LiveMpc: live}); err != nil {
		log.WithError(err).Error("publish tick output")
	}
}
