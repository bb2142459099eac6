// Package render turns an article and its analysis into the HTML blob
// stored inside each knowledge-base entry. The markup mirrors what the
// static frontend styles expect (tag classes, source-box,
// tech-analysis-box), so structural changes here need a frontend change.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/MORS0422/realtime-tech-library/models"
	"github.com/MORS0422/realtime-tech-library/pkg/textutil"
)

const contentTemplate = `<div class="article-content">
    <div class="flex flex-wrap items-center gap-3 mb-6">
        <span class="%[1]s px-3 py-1 rounded-full text-sm">%[2]s</span>
        <span class="text-gray-500">%[3]s</span>
        <span class="text-gray-500">•</span>
        <span class="text-gray-500">%[4]s</span>
    </div>
    <h1>%[5]s</h1>
    <p class="text-xl text-gray-300 mb-6">%[6]s</p>
    <div class="source-box">
        <div class="flex items-center gap-2 mb-2">
            <svg class="w-4 h-4 text-neon-amber" fill="none" stroke="currentColor" viewBox="0 0 24 24">
                <path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M13.828 10.172a4 4 0 00-5.656 0l-4 4a4 4 0 105.656 5.656l1.102-1.101m-.758-4.899a4 4 0 005.656 0l4-4a4 4 0 00-5.656-5.656l-1.1 1.1"></path>
            </svg>
            <span class="text-neon-amber font-medium">原文链接</span>
        </div>
        <div class="text-sm text-gray-400">
            <div>• <a href="%[7]s" target="_blank" class="text-neon-blue hover:underline">%[8]s - 查看完整原文</a></div>
        </div>
    </div>
    <div class="tech-analysis-box" style="border-color: %[9]s40;">
        <div class="flex items-center gap-2 mb-4">
            <span class="text-lg font-semibold" style="color: %[9]s">🔬 技术分析</span>
        </div>
        <p class="mb-0 text-gray-300 leading-relaxed">%[10]s</p>
    </div>
    <h2>🎯 核心技术点</h2>
    <div class="flex flex-wrap gap-2 mb-6">%[11]s</div>
    <div class="bg-dark-700/50 rounded-xl p-6 mt-8 border-l-4" style="border-color: %[9]s">
        <p class="mb-0 text-gray-400">
            <strong style="color: %[9]s">💡 提示:</strong>
            本文为自动抓取生成的中文摘要。如需完整技术细节，请点击上方原文链接。
        </p>
    </div>
</div>`

// Content renders the entry body. Analysis text is trusted and embedded
// as-is; it comes from our own templates or from a backend we prompt.
func Content(article *models.Article, analysis *models.Analysis) string {
	category := article.Category
	if !models.KnownCategory(category) {
		category = models.DefaultCategoryKey
	}
	cfg := models.CategoryByKey(category)
	tagClass := "tag-" + category

	published := textutil.Truncate(article.Published, 10)
	if published == "" {
		published = time.Now().Format("2006-01-02")
	}
	source := article.SourceName
	if source == "" {
		source = "未知来源"
	}

	var tags strings.Builder
	for _, tech := range analysis.KeyTechnologies {
		fmt.Fprintf(&tags, `<span class="%s px-3 py-1 rounded-full text-sm">%s</span>`, tagClass, tech)
	}

	return fmt.Sprintf(contentTemplate,
		tagClass,
		cfg.Name,
		published,
		analysis.TargetAudience,
		analysis.ChineseTitle,
		analysis.TechnicalSummary,
		article.Link,
		source,
		cfg.Color,
		analysis.TechnicalAnalysis,
		tags.String(),
	)
}
