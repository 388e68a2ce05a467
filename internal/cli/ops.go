package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/CabFace/internal/engine"
	"github.com/piwi3910/CabFace/internal/importer"
	"github.com/piwi3910/CabFace/internal/model"
)

// editOp is one --op argument: a verb followed by colon-separated operands,
// for example "split:root:v" or "dim:root-0:12 1/2".
type editOp struct {
	verb string
	args []string
}

func (o editOp) String() string {
	return strings.Join(append([]string{o.verb}, o.args...), ":")
}

// opArity is the operand count each verb accepts, as min and max.
var opArity = map[string][2]int{
	"split":     {2, 2}, // split:NODE:h|v
	"delete":    {1, 1}, // delete:NODE
	"type":      {2, 2}, // type:NODE:FACE_TYPE
	"dim":       {2, 2}, // dim:NODE:INCHES
	"equalize":  {1, 1}, // equalize:CONTAINER
	"drag":      {3, 3}, // drag:NODE:SIBLING:PIXELS
	"size":      {3, 3}, // size:W:H:D
	"style":     {1, 1}, // style:ID
	"item":      {1, 1}, // item:ID
	"shelves":   {2, 2}, // shelves:NODE:N
	"rollouts":  {2, 2}, // rollouts:NODE:N
	"glass":     {2, 3}, // glass:NODE:PANEL[:SHELVES]
	"accessory": {2, 2}, // accessory:NODE:DEF
	"detach":    {2, 2}, // detach:NODE:ACCESSORY
	"reset":     {0, 0}, // reset
}

func parseOp(s string) (editOp, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	op := editOp{verb: strings.ToLower(parts[0]), args: parts[1:]}
	arity, ok := opArity[op.verb]
	if !ok {
		return editOp{}, fmt.Errorf("unknown edit %q", op.verb)
	}
	if len(op.args) < arity[0] || len(op.args) > arity[1] {
		return editOp{}, fmt.Errorf("edit %q takes %d operands, got %d", s, arity[0], len(op.args))
	}
	return op, nil
}

func parseDirection(s string) (model.Direction, error) {
	switch strings.ToLower(s) {
	case "h", "horizontal":
		return model.DirectionHorizontal, nil
	case "v", "vertical":
		return model.DirectionVertical, nil
	}
	return "", fmt.Errorf("invalid split direction %q (want h or v)", s)
}

func parseFaceType(s string) (model.NodeType, error) {
	t := model.NodeType(strings.ToLower(strings.ReplaceAll(s, "-", "_")))
	if !t.IsFace() {
		return "", fmt.Errorf("invalid face type %q", s)
	}
	return t, nil
}

// applyOp runs one parsed edit against the editor.
func applyOp(ed *engine.Editor, op editOp) error {
	a := op.args
	switch op.verb {
	case "split":
		dir, err := parseDirection(a[1])
		if err != nil {
			return err
		}
		return ed.Split(a[0], dir)
	case "delete":
		return ed.Delete(a[0])
	case "type":
		t, err := parseFaceType(a[1])
		if err != nil {
			return err
		}
		return ed.SetLeafType(a[0], t)
	case "dim":
		v, err := importer.ParseInches(a[1])
		if err != nil {
			return err
		}
		return ed.SetDimension(a[0], v)
	case "equalize":
		return ed.Equalize(a[0])
	case "drag":
		px, err := strconv.ParseFloat(a[2], 64)
		if err != nil {
			return fmt.Errorf("invalid drag distance %q", a[2])
		}
		return ed.Drag(a[0], a[1], px)
	case "size":
		var dims [3]float64
		for i, s := range a {
			v, err := importer.ParseInches(s)
			if err != nil {
				return err
			}
			dims[i] = v
		}
		return ed.Resize(dims[0], dims[1], dims[2])
	case "style", "item":
		id, err := strconv.Atoi(a[0])
		if err != nil {
			return fmt.Errorf("invalid %s id %q", op.verb, a[0])
		}
		if op.verb == "style" {
			return ed.SetStyle(id)
		}
		return ed.ChangeItemType(id)
	case "shelves", "rollouts":
		n, err := strconv.Atoi(a[1])
		if err != nil {
			return fmt.Errorf("invalid %s count %q", op.verb, a[1])
		}
		if op.verb == "shelves" {
			return ed.SetShelfQty(a[0], n)
		}
		return ed.SetRollOutQty(a[0], n)
	case "glass":
		shelves := ""
		if len(a) == 3 {
			shelves = a[2]
		}
		return ed.SetGlass(a[0], a[1], shelves)
	case "accessory":
		_, err := ed.AttachAccessory(a[0], a[1])
		return err
	case "detach":
		return ed.DetachAccessory(a[0], a[1])
	case "reset":
		ed.Reset()
		return nil
	}
	return fmt.Errorf("unknown edit %q", op.verb)
}
