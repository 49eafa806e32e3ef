package customerquery

import (
	"time"

	"github.com/chartbrew/customerquery/util"
)

type Options struct {
	// SegmentRequestTimeout bounds the one-shot segment listing made when a builder opens.
	SegmentRequestTimeout time.Duration `json:"segmentRequestTimeout,omitempty"`
	// DefaultLimit is the initial result limit; 0 means unlimited.
	DefaultLimit int `json:"defaultLimit,omitempty"`
	// PopulateAttributes is the initial "include full attribute payload" setting.
	PopulateAttributes bool `json:"populateAttributes,omitempty"`
	// StrictParsing rejects unknown keys when loading stored conditions.
	StrictParsing bool `json:"strictParsing,omitempty"`
	Logger        util.Logger
}

func (o *Options) CheckDefaults() {
	if o.SegmentRequestTimeout <= 0 {
		o.SegmentRequestTimeout = time.Second * 30
	} else if o.SegmentRequestTimeout < time.Second*1 {
		util.Warnf("SegmentRequestTimeout cannot be less than 1 second. Defaulting to 1 second.")
		o.SegmentRequestTimeout = time.Second * 1
	}

	if o.DefaultLimit < 0 {
		util.Warnf("DefaultLimit cannot be negative. Defaulting to 0 (unlimited).")
		o.DefaultLimit = 0
	}
}

func (o *Options) jsonConfig() *util.JSONConfig {
	if o.StrictParsing {
		return util.StrictConfig()
	}
	return util.DefaultConfig()
}
