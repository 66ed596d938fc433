package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pan-Binghong/family-constellation/internal/domain/analysis"
)

func TestBasicPrompt(t *testing.T) {
	descriptions := []string{"", "父亲站在中心，母亲在远处", "  带空格的描述  ", "包含%s格式符"}
	for _, d := range descriptions {
		got := NewBuilder().Build(d, nil)
		assert.Contains(t, got, "以下是用户的家庭排列描述："+d+"。")
		assert.Contains(t, got, "- 每个家庭成员都有归属权。")
		assert.Contains(t, got, "- 未解决的过去事件可能影响当前动态。")
		assert.Contains(t, got, "- 空间位置反映情感关系（如距离表示疏离，中心表示重要性）。")
		assert.NotContains(t, got, "🏠")
	}
}

func TestScreenshotPrompt(t *testing.T) {
	ok := analysis.Probe{Success: true, Format: "PNG", Mode: "RGB"}
	failed := analysis.Probe{Success: false, Error: "illegal base64 data at input byte 3"}

	for _, probe := range []analysis.Probe{ok, failed} {
		got := NewBuilder().Build("我站在角落", &probe)

		assert.Contains(t, got, "我站在角落")
		for _, d := range screenshotDimensions {
			assert.Contains(t, got, d)
		}
		for _, emoji := range []string{"🏠", "👥", "💞", "🔍", "🌱"} {
			assert.Contains(t, got, "## "+emoji)
		}
	}
}

func TestScreenshotPromptProbeBlock(t *testing.T) {
	got := ScreenshotPrompt("d", analysis.Probe{Success: true, Format: "PNG", Mode: "RGB"})
	assert.Contains(t, got, "格式：PNG，色彩模式：RGB")
	assert.Contains(t, got, "截图分析要点")

	got = ScreenshotPrompt("d", analysis.Probe{Error: "bad input"})
	assert.Contains(t, got, "截图处理失败（bad input）")
	assert.NotContains(t, got, "截图分析要点")
}
