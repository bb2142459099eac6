// Package analysis produces the per-article analysis record. The
// template path here is deterministic and always succeeds; it doubles as
// the fallback when the external backend (pkg/llm) is unavailable.
package analysis

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/MORS0422/realtime-tech-library/models"
	"github.com/MORS0422/realtime-tech-library/pkg/textutil"
)

const (
	summaryExcerptLen  = 200
	analysisExcerptLen = 150
)

// titleReplacer localizes the technical vocabulary that shows up in feed
// titles. Product names (UE5, Nanite, Lumen, Niagara) map to themselves
// so a partial overlap never mangles them.
var titleReplacer = strings.NewReplacer(
	"Unreal Engine", "虚幻引擎",
	"UE5", "UE5",
	"UE4", "UE4",
	"Nanite", "Nanite",
	"Lumen", "Lumen",
	"Niagara", "Niagara",
	"Tutorial", "教程",
	"Guide", "指南",
	"Release", "发布",
	"Update", "更新",
	"Deep Learning", "深度学习",
	"Machine Learning", "机器学习",
	"Neural", "神经网络",
	"Rendering", "渲染",
	"Ray Tracing", "光线追踪",
	"Global Illumination", "全局光照",
)

type template struct {
	summaryLead   string
	summaryEmpty  string
	analysisLead  string
	analysisEmpty string
	technologies  []string
	audience      string
	difficulty    string
}

var templates = map[string]template{
	"ue": {
		summaryLead:   "本文介绍了虚幻引擎相关的最新技术进展。",
		summaryEmpty:  "详细探讨了UE5引擎的新功能和优化技巧。",
		analysisLead:  "虚幻引擎作为行业主流游戏引擎，持续在渲染技术、工具链和工作流程上创新。",
		analysisEmpty: "本文涉及的技术方案对游戏开发者具有重要参考价值。",
		technologies:  []string{"虚幻引擎5", "渲染优化", "游戏开发", "Niagara粒子系统"},
		audience:      "中级UE开发者",
		difficulty:    "中等",
	},
	"ta": {
		summaryLead:   "本文探讨了技术美术领域的实用技巧。",
		summaryEmpty:  "分享了TA工作中的最佳实践。",
		analysisLead:  "技术美术是连接程序和美术的桥梁。",
		analysisEmpty: "本文介绍的方法可以帮助TA团队更高效地完成工作。",
		technologies:  []string{"技术美术", "Shader开发", "材质系统", "工具开发"},
		audience:      "技术美术师",
		difficulty:    "中等",
	},
	"ta-render": {
		summaryLead:   "本文分享了特效制作的实战经验。",
		summaryEmpty:  "展示了渲染和特效优化的具体案例。",
		analysisLead:  "视觉特效是提升游戏沉浸感的关键。",
		analysisEmpty: "本文介绍的技巧可以帮助在保持高质量的同时控制好性能开销。",
		technologies:  []string{"视觉特效", "渲染优化", "实时渲染", "Niagara"},
		audience:      "特效师",
		difficulty:    "中等",
	},
	"render": {
		summaryLead:   "本文深入探讨了实时渲染技术的最新进展。",
		summaryEmpty:  "涵盖了图形学算法和渲染管线的优化方案。",
		analysisLead:  "实时渲染技术是游戏和影视行业的核心。",
		analysisEmpty: "本文涉及的技术方案代表了当前图形学领域的前沿方向。",
		technologies:  []string{"实时渲染", "图形学算法", "光线追踪", "PBR材质"},
		audience:      "渲染工程师",
		difficulty:    "困难",
	},
	"ai": {
		summaryLead:   "本文介绍了AI技术在游戏开发中的最新应用。",
		summaryEmpty:  "探讨了机器学习和神经网络在实时渲染中的创新应用。",
		analysisLead:  "AI正在深刻改变游戏开发的工作流程。",
		analysisEmpty: "本文展示的技术代表了AI与游戏结合的最新趋势。",
		technologies:  []string{"机器学习", "神经网络", "生成式AI", "AI辅助开发"},
		audience:      "AI工程师/技术美术",
		difficulty:    "困难",
	},
}

// Generator builds template analyses. It carries a language detector so
// titles that already arrive in Chinese skip the vocabulary substitution.
type Generator struct {
	detector lingua.LanguageDetector
}

func NewGenerator() *Generator {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.Chinese, lingua.English).
		Build()
	return &Generator{detector: detector}
}

// Generate produces a complete analysis record for an article. It never
// fails: an unknown category falls back to the default section template.
func (g *Generator) Generate(a *models.Article) *models.Analysis {
	tpl, ok := templates[a.Category]
	if !ok {
		tpl = templates[models.DefaultCategoryKey]
	}

	summary := textutil.CleanHTML(a.Summary)

	technicalSummary := tpl.summaryLead
	technicalAnalysis := tpl.analysisLead
	if summary != "" {
		technicalSummary += textutil.Truncate(summary, summaryExcerptLen)
		technicalAnalysis += textutil.Truncate(summary, analysisExcerptLen)
	} else {
		technicalSummary += tpl.summaryEmpty
		technicalAnalysis += tpl.analysisEmpty
	}

	return &models.Analysis{
		ChineseTitle:      g.LocalizeTitle(a.Title),
		TechnicalSummary:  technicalSummary,
		KeyTechnologies:   append([]string(nil), tpl.technologies...),
		TechnicalAnalysis: technicalAnalysis,
		TargetAudience:    tpl.audience,
		Difficulty:        tpl.difficulty,
		PracticalValue:    "提升工作效率，优化项目质量",
	}
}

// LocalizeTitle substitutes known vocabulary in an English title. Titles
// the detector already recognizes as Chinese pass through untouched.
func (g *Generator) LocalizeTitle(title string) string {
	if title == "" {
		return title
	}
	if lang, ok := g.detector.DetectLanguageOf(title); ok && lang == lingua.Chinese {
		return title
	}
	return titleReplacer.Replace(title)
}
