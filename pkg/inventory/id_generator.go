package inventory

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

func init() {
	// 41 bits of milliseconds plus 2 node bits and 8 step bits keep every id
	// below 2^53, so JSON clients decode it exactly.
	snowflake.NodeBits = 2
	snowflake.StepBits = 8
}

const MaxNodeID = 1<<2 - 1

type (
	IDGenerator interface {
		NextID() int64
	}

	snowflakeGenerator struct {
		node *snowflake.Node
	}
)

// NewIDGenerator returns time-ordered ids that are unique for this node even
// when several records are created in the same millisecond.
func NewIDGenerator(nodeID int64) (IDGenerator, error) {
	if nodeID < 0 || nodeID > MaxNodeID {
		return nil, fmt.Errorf("node id must be between 0 and %d, got %d", MaxNodeID, nodeID)
	}
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &snowflakeGenerator{node: node}, nil
}

func (g *snowflakeGenerator) NextID() int64 {
	return g.node.Generate().Int64()
}
