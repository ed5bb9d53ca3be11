package fragility

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StartPosLabel is the move label of the ply-0 record, emitted before any
// move is played.
const StartPosLabel = "start-pos"

// Record is the fragility measurement of a single ply.
type Record struct {
	Ply       int            `json:"ply" bson:"ply"`
	MoveUCI   string         `json:"move_uci" bson:"move_uci"`
	Fragility float64        `json:"fragility" bson:"fragility"`
	TopPiece  *AttackedPiece `json:"top_piece,omitempty" bson:"top_piece,omitempty"`
	Eval      *EvalScore     `json:"eval,omitempty" bson:"eval,omitempty"`
}

// GameReport is the per-ply fragility series of a whole game, plus the tag
// metadata used for storage and lookup.
type GameReport struct {
	White   string             `json:"white" bson:"white"`
	Black   string             `json:"black" bson:"black"`
	Date    primitive.DateTime `json:"date,omitempty" bson:"date,omitempty"`
	Records []Record           `json:"records" bson:"records"`
}

// HasEvals reports whether any ply of the game carries an engine evaluation.
func (r GameReport) HasEvals() bool {
	for _, rec := range r.Records {
		if rec.Eval != nil {
			return true
		}
	}
	return false
}

func (r GameReport) String() string {
	j, _ := json.MarshalIndent(r, "", "\t")
	return string(j)
}
