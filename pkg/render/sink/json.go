package sink

import (
	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/plan"
)

// RenderJSON encodes the plan for external renderers.
func RenderJSON(p *impose.Plan) ([]byte, error) {
	return plan.Marshal(p)
}
