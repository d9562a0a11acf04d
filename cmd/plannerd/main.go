package main

import (
	"context"
	"encoding/base64"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/openadas/latplanner/internal/collab"
	"github.com/openadas/latplanner/internal/config"
	"github.com/openadas/latplanner/internal/planner"
	"github.com/openadas/latplanner/internal/runner"
	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var (
	configPath = flag.String("config", "", "config file path")
	configData = flag.String("config-data", "", "config file base64 encoded data")

	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "log level (one of: trace debug info warn error critical off)")

	debugMPC = flag.Bool("debug.mpc", false, "publish liveMpc even if the config file doesn't request it")

	log = logrus.WithField("module", "plannerd")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}

	var c config.Config
	var file []byte
	var err error
	switch {
	case *configPath != "":
		file, err = os.ReadFile(*configPath)
		if err != nil {
			log.Panicf("config file load err: %v", err)
		}
	case *configData != "":
		file, err = base64.StdEncoding.DecodeString(*configData)
		if err != nil {
			log.Panicf("config data load err: %v", err)
		}
	default:
		log.Panic("config file or config data must be specified")
	}
	if err := yaml.UnmarshalStrict(file, &c); err != nil {
		log.Panicf("config file load err: %v", err)
	}
	rc := config.NewRuntimeConfig(c)
	log.Infof("%+v", rc.All)

	solver := mustSolver()
	lane := mustLaneLineSource()
	vehicle := mustVehicleModel()

	var opts []planner.Option
	if rc.All.Debug.MPC || *debugMPC {
		opts = append(opts, planner.WithDebugMPC())
	}
	p := planner.New(
		solver, lane, vehicle,
		planner.MPCCostLat{
			Path:    rc.All.MPCCost.Path,
			Lane:    rc.All.MPCCost.Lane,
			Heading: rc.All.MPCCost.Heading,
		},
		rc.All.MPCCost.Rate,
		rc.All.Vehicle.SteerActuatorDelay,
		rc.All.LaneChange.Enabled,
		rc.All.LaneChange.AutoDelay,
		opts...,
	)

	r := runner.New(p, newStdioSource(os.Stdin), newStdioSink(os.Stdout), rc.TickInterval)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := r.Run(ctx); err != nil {
		if ctx.Err() == nil {
			log.Panicf("runner stopped: %v", err)
		}
		log.Infof("shutting down: %v", ctx.Err())
	}
}

// mustSolver, mustLaneLineSource and mustVehicleModel construct the
// real MPC solver, lane-line fusion and vehicle model collaborators.
// All three are external to this module; a deployment wires its own
// bindings in here.
func mustSolver() collab.Solver {
	log.Panic("no MPC solver collaborator wired: implement collab.Solver for your deployment")
	return nil
}

func mustLaneLineSource() collab.LaneLineSource {
	log.Panic("no lane-line collaborator wired: implement collab.LaneLineSource for your deployment")
	return nil
}

func mustVehicleModel() collab.VehicleModel {
	log.Panic("no vehicle model collaborator wired: implement collab.VehicleModel for your deployment")
	return nil
}
