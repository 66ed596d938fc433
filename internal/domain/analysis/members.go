package analysis

import (
	"fmt"
	"strconv"
	"strings"
)

// Member is one figure placed on the constellation canvas.
type Member struct {
	Role       string  `json:"role"`
	Name       string  `json:"name"`
	Gender     string  `json:"gender,omitempty"`
	Shape      string  `json:"shape,omitempty"`
	IsDeceased bool    `json:"isDeceased"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Direction  string  `json:"direction,omitempty"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// DescribeMembers renders the canvas members as a single Chinese sentence list
// suitable for the description slot of a prompt.
func DescribeMembers(members []Member) string {
	if len(members) == 0 {
		return "无家庭成员数据。"
	}

	lines := make([]string, 0, len(members))
	for _, m := range members {
		gender, shape := m.genderAndShape()
		deceased := "未故"
		if m.IsDeceased {
			deceased = "已故"
		}
		lines = append(lines, fmt.Sprintf("%s（%s, %s, %s, %s），位于(%s, %s)，朝向%s，尺寸%sx%s",
			orUnknown(m.Role),
			orUnknown(m.Name),
			gender,
			shape,
			deceased,
			num(m.X),
			num(m.Y),
			orDefault(m.Direction, "无"),
			num(m.Width),
			num(m.Height),
		))
	}
	return strings.Join(lines, "；") + "。"
}

// shape wins over gender when both are set
func (m Member) genderAndShape() (string, string) {
	if m.Shape != "" {
		gender := "女"
		if m.Shape == "square" {
			gender = "男"
		}
		switch m.Shape {
		case "square":
			return gender, "方形"
		case "circle":
			return gender, "圆形"
		default:
			return gender, m.Shape
		}
	}
	switch m.Gender {
	case "male":
		return "男", "方形"
	case "female":
		return "女", "圆形"
	default:
		return "未知", "未知"
	}
}

func orUnknown(s string) string { return orDefault(s, "未知") }

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
