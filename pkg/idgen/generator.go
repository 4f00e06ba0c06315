package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out unique, roughly time-ordered 64-bit IDs.
type Generator interface {
	GenerateID() int64
}

type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator creates a generator for one process.
// nodeID (0-1023) must differ between instances sharing a database.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node %d: %w", nodeID, err)
	}

	return &SnowflakeGenerator{node: node}, nil
}

// GenerateID is safe for concurrent use; snowflake.Node locks internally.
func (g *SnowflakeGenerator) GenerateID() int64 {
	return g.node.Generate().Int64()
}
