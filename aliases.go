package customerquery

import (
	"github.com/chartbrew/customerquery/api"
	"github.com/chartbrew/customerquery/conditions"
	"github.com/chartbrew/customerquery/util"
)

type Segment = api.Segment
type Customer = api.Customer
type Target = api.Target
type QueryRequest = api.QueryRequest
type Tree = conditions.Tree
type Node = conditions.Node
type Matcher = conditions.Matcher
type Combinator = conditions.Combinator
type Operator = conditions.Operator
type SegmentConfig = conditions.SegmentConfig
type AttributeConfig = conditions.AttributeConfig
type Logger = util.Logger
type DiscardLogger = util.DiscardLogger

const (
	CombinatorAnd = conditions.CombinatorAnd
	CombinatorOr  = conditions.CombinatorOr
)

func SetLogger(log Logger) { util.SetLogger(log) }
