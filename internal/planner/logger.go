package planner

import "github.com/sirupsen/logrus"

// log is the planner package's logger, tagged so it can be filtered out
// of the rest of the stack's log stream.
var log = logrus.WithField("module", "planner")
