package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeMembers(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, "无家庭成员数据。", DescribeMembers(nil))
	})

	t.Run("gender and shape", func(t *testing.T) {
		got := DescribeMembers([]Member{
			{Role: "父亲", Name: "张三", Gender: "male", X: 10, Y: 20, Direction: "北", Width: 40, Height: 40},
			{Role: "母亲", Name: "李四", Shape: "circle", IsDeceased: true, X: 12.5, Y: 20},
		})
		assert.Equal(t,
			"父亲（张三, 男, 方形, 未故），位于(10, 20)，朝向北，尺寸40x40；母亲（李四, 女, 圆形, 已故），位于(12.5, 20)，朝向无，尺寸0x0。",
			got)
	})

	t.Run("unknown fields", func(t *testing.T) {
		got := DescribeMembers([]Member{{}})
		assert.Equal(t, "未知（未知, 未知, 未知, 未故），位于(0, 0)，朝向无，尺寸0x0。", got)
	})
}

func TestRequestEffectiveDescription(t *testing.T) {
	members := []Member{{Role: "我", Name: "小明", Gender: "male"}}

	assert.Equal(t, "写好的描述", Request{Description: "写好的描述", Members: members}.EffectiveDescription())
	assert.Contains(t, Request{Members: members}.EffectiveDescription(), "我（小明, 男, 方形, 未故）")
	assert.Equal(t, "", Request{}.EffectiveDescription())
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "basic", TierBasic.String())
	assert.Equal(t, "extended", TierExtended.String())
}
