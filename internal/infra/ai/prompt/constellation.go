package prompt

import (
	"fmt"
	"strings"

	"github.com/Pan-Binghong/family-constellation/internal/domain/analysis"
)

// Heuristics embedded in every basic prompt.
var basicPrinciples = []string{
	"每个家庭成员都有归属权。",
	"未解决的过去事件可能影响当前动态。",
	"空间位置反映情感关系（如距离表示疏离，中心表示重要性）。",
}

// Dimensions the screenshot-aware prompt asks the model to cover.
var screenshotDimensions = []string{
	"空间位置：观察每个成员在画布中的位置，谁处于中心，谁处于边缘。",
	"形状约定：方形代表男性，圆形代表女性，请据此识别成员性别。",
	"已故标记：带有已故标记的成员代表已离世的家人，留意其与在世成员的关系。",
	"情感距离：成员之间的距离代表情感上的亲疏，距离越远表示越疏离。",
	"系统完整性与平衡：检查是否有成员被遗漏或排除，整个系统是否平衡。",
}

// Report sections requested from the model, in order.
var reportSections = []string{
	"🏠 家庭系统概览",
	"👥 成员位置与关系",
	"💞 情感动态解读",
	"🔍 潜在议题与隐藏动力",
	"🌱 疗愈建议",
}

// Builder assembles the prompts sent to the completion backend.
type Builder struct{}

func NewBuilder() *Builder { return &Builder{} }

// Build returns the basic prompt when probe is nil and the screenshot-aware prompt otherwise.
func (b *Builder) Build(description string, probe *analysis.Probe) string {
	if probe == nil {
		return BasicPrompt(description)
	}
	return ScreenshotPrompt(description, *probe)
}

// BasicPrompt builds the description-only prompt.
func BasicPrompt(description string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "你是海灵格家庭排序理论的专家。以下是用户的家庭排列描述：%s。请根据以下原则分析用户的心理状态和对家庭成员的态度：\n", description)
	for _, p := range basicPrinciples {
		sb.WriteString("- ")
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	sb.WriteString("提供心理分析和建议。")
	return sb.String()
}

// ScreenshotPrompt builds the extended prompt used when the caller attached a
// canvas screenshot. The screenshot block only reflects the probe outcome.
func ScreenshotPrompt(description string, probe analysis.Probe) string {
	var sb strings.Builder
	sb.WriteString("你是海灵格家庭系统排列的专家分析师。用户在画布上完成了一次家庭排列，并提供了文字描述和画布截图。\n\n")
	fmt.Fprintf(&sb, "【用户描述】\n%s\n\n", description)

	sb.WriteString("【截图信息】\n")
	if probe.Success {
		fmt.Fprintf(&sb, "- 截图已接收，格式：%s，色彩模式：%s\n", probe.Format, probe.Mode)
		sb.WriteString("- 截图分析要点：请结合画布中各成员的相对位置、形状、标记和间距，与文字描述相互印证。\n\n")
	} else {
		fmt.Fprintf(&sb, "- 截图处理失败（%s），以下分析仅基于文字描述。\n\n", probe.Error)
	}

	sb.WriteString("【分析维度】\n")
	for i, d := range screenshotDimensions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, d)
	}

	sb.WriteString("\n【输出要求】\n请使用温暖、非评判的语言，按以下五个部分输出结构化的分析报告：\n")
	for _, s := range reportSections {
		fmt.Fprintf(&sb, "## %s\n", s)
	}
	sb.WriteString("\n避免绝对化判断和医学诊断，承认分析的局限性，并给出建设性的建议。")
	return sb.String()
}
