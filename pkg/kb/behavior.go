package kb

// accessorBlock and behaviorBlock are the fixed page logic shipped with
// every artifact. They are emitted verbatim on every run; only the data
// portion of the artifact ever changes. The category names and tag
// classes inside mirror models.Categories.

const accessorBlock = `    getArticle(id) { return this.articles[id] || { title: '文章不存在', content: '<div class="text-center py-12"><h2>找不到该文章</h2></div>' }; },
    getArticlesByCategory(category) { return Object.entries(this.articles).filter(([id, a]) => a.category === category).map(([id, a]) => ({ id, ...a })); }
`

const behaviorBlock = `function showPage(pageId) { document.querySelectorAll('.page').forEach(p => p.classList.remove('active')); const t = document.getElementById('page-' + pageId); if (t) { if (['ue','ta','render','ta-render','ai'].includes(pageId)) loadCategoryPage(pageId); t.classList.add('active'); } if (pageId !== 'article') knowledgeBase.currentCategory = pageId; document.getElementById('mobile-menu').classList.add('hidden'); window.scrollTo(0, 0); }
function loadCategoryPage(category) { const page = document.getElementById('page-' + category); const articles = knowledgeBase.getArticlesByCategory(category); const names = {'ue':'Unreal Engine','ta':'技术美术','render':'实时渲染','ta-render':'TA渲染专栏','ai':'AI技术'}; const classes = {'ue':'tag-ue','ta':'tag-ta','render':'tag-render','ta-render':'tag-ta-render','ai':'tag-ai'}; let html = articles.map(a => ` + "`" + `<div onclick="showArticle('${a.id}')" class="glass-panel rounded-2xl p-6 card-hover cursor-pointer"><div class="flex items-center gap-2 mb-3"><span class="${classes[category]} px-2 py-1 rounded text-xs">${a.tags[0]}</span><span class="text-gray-500 text-xs">${a.readTime}</span><span class="text-gray-500 text-xs">•</span><span class="text-gray-500 text-xs">${a.difficulty}</span></div><h3 class="text-xl font-semibold text-white mb-2">${a.title}</h3><p class="text-gray-400 text-sm">${a.author} · ${a.date}</p></div>` + "`" + `).join(''); if (articles.length === 0) html = '<div class="glass-panel rounded-2xl p-12 text-center"><h3>该分类暂无文章</h3></div>'; page.innerHTML = ` + "`" + `<div class="py-12 px-6"><div class="max-w-7xl mx-auto"><div class="flex items-center gap-4 mb-8"><button onclick="showPage('home')" class="flex items-center gap-2 px-4 py-2 rounded-lg glass-panel hover:bg-white/5"><i data-lucide="home" class="w-5 h-5"></i><span>回到主页</span></button><div><h2 class="text-3xl font-bold ${category === 'ta-render' ? 'text-neon-green' : 'text-white'}">${names[category]}</h2><p class="text-gray-500">共 ${articles.length} 篇技术文章</p></div></div><div class="grid grid-cols-1 md:grid-cols-2 gap-6">${html}</div></div></div>` + "`" + `; }
function showArticle(id) { const a = knowledgeBase.getArticle(id); const p = document.getElementById('page-article'); p.innerHTML = ` + "`" + `<div class="py-12 px-6"><div class="max-w-4xl mx-auto"><button onclick="backToCategory()" class="flex items-center gap-2 text-gray-400 hover:text-white mb-6"><i data-lucide="arrow-left" class="w-5 h-5"></i><span>返回分类</span></button><div class="glass-panel rounded-3xl p-8 md:p-12">${a.content}</div></div></div>` + "`" + `; showPage('article'); if (typeof lucide !== 'undefined') lucide.createIcons(); }
function backToCategory() { if (knowledgeBase.currentCategory && knowledgeBase.currentCategory !== 'home') showPage(knowledgeBase.currentCategory); else showPage('home'); }
function toggleMobileMenu() { document.getElementById('mobile-menu').classList.toggle('hidden'); }
document.addEventListener('DOMContentLoaded', function() { if (typeof lucide !== 'undefined') lucide.createIcons(); const t = document.getElementById('last-update-time'); if (t) t.textContent = knowledgeBase.meta.lastUpdated; });
`
