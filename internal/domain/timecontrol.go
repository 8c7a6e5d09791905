package domain

import (
	"strconv"
	"strings"
)

// ParseTimeControl parses the time-control formats used by both platforms:
// "base+increment" (seconds), "days/baseSeconds" for correspondence, or a
// bare number of base seconds. Unparseable strings yield zero values.
func ParseTimeControl(timeControl string) (baseSeconds, incrementSeconds int) {
	if timeControl == "" || timeControl == "-" {
		return 0, 0
	}
	if slash := strings.IndexByte(timeControl, '/'); slash != -1 {
		baseSeconds, _ = strconv.Atoi(timeControl[slash+1:])
		return baseSeconds, 0
	}
	if plus := strings.IndexByte(timeControl, '+'); plus != -1 {
		baseSeconds, _ = strconv.Atoi(timeControl[:plus])
		incrementSeconds, _ = strconv.Atoi(timeControl[plus+1:])
		return baseSeconds, incrementSeconds
	}
	baseSeconds, _ = strconv.Atoi(timeControl)
	return baseSeconds, 0
}

// TimeClassFromBase buckets a base time into the coarse speed category.
func TimeClassFromBase(baseSeconds int) TimeClass {
	switch {
	case baseSeconds <= 0:
		return TimeClassDaily
	case baseSeconds <= 60:
		return TimeClassBullet
	case baseSeconds <= 300:
		return TimeClassBlitz
	case baseSeconds <= 600:
		return TimeClassRapid
	default:
		return TimeClassDaily
	}
}
