package config

// LaneChange configures the lane-change FSM.
type LaneChange struct {
	Enabled bool `yaml:"enabled"`
	// AutoDelay is how long the FSM waits in preLaneChange before
	// auto-starting without driver torque, in seconds. Zero disables
	// auto-start: a lane change then only begins once the driver
	// applies torque in the blinker's direction.
	AutoDelay float64 `yaml:"auto_delay,omitempty"`
}

// MPCCost are the MPC solver's cost weights.
type MPCCost struct {
	Path    float64 `yaml:"path"`
	Lane    float64 `yaml:"lane"`
	Heading float64 `yaml:"heading"`
	Rate    float64 `yaml:"rate"`
}

// Vehicle configures the actuator model the planner compensates for.
type Vehicle struct {
	SteerActuatorDelay float64 `yaml:"steer_actuator_delay"`
}

// Debug toggles optional, non-authoritative publications.
type Debug struct {
	MPC bool `yaml:"mpc,omitempty"`
}

// Config is the YAML configuration file's root structure.
type Config struct {
	LaneChange LaneChange `yaml:"lane_change"`
	MPCCost    MPCCost    `yaml:"mpc_cost"`
	Vehicle    Vehicle    `yaml:"vehicle"`
	Debug      Debug      `yaml:"debug,omitempty"`
	// TickInterval is the runner loop's period, in seconds. Left at
	// zero to fall back to the model's native rate.
	TickInterval float64 `yaml:"tick_interval,omitempty"`
}
