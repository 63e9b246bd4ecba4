package report

import "github.com/MaherElabd2/price23-sub001/internal/engine"

// labels holds every user-facing string in one report language. The report
// builder never concatenates translated fragments; each label is a complete
// phrase so word order stays natural in both languages.
type labels struct {
	title              string
	generatedAt        string
	productCount       string
	fixedCostPool      string
	recommendation     string
	strategy           string
	recommendedMargin  string
	rationale          string
	unitEconomics      string
	product            string
	monthlyQuantity    string
	variableCost       string
	fixedShare         string
	totalUnitCost      string
	finalPrice         string
	allocation         string
	allocationIntro    string
	allocatedAmount    string
	allocatedRatio     string
	pricingDetail      string
	avgCompetitor      string
	basePrice          string
	breakEven          string
	contributionMargin string
	breakEvenUnits     string
	breakEvenRevenue   string
	breakEvenStatus    string
	reached            string
	notReached         string
	notViable          string
	customerEconomics  string
	portfolio          string
	ratio              string
	lifetimeMonths     string
	warnings           string
	glossary           string
	term               string
	definition         string
	glossaryRows       [][2]string
	disclaimer         string
	strategies         map[engine.Strategy]string
}

func labelsFor(lang Lang) labels {
	if lang == LangArabic {
		return arabicLabels
	}
	return englishLabels
}

func strategyLabel(s engine.Strategy, t labels) string {
	if label, ok := t.strategies[s]; ok {
		return label
	}
	return string(s)
}

var englishLabels = labels{
	title:              "Pricing Report",
	generatedAt:        "Generated",
	productCount:       "Products",
	fixedCostPool:      "Shared monthly fixed costs",
	recommendation:     "Recommended Strategy",
	strategy:           "Strategy",
	recommendedMargin:  "Recommended margin",
	rationale:          "Why",
	unitEconomics:      "Unit Economics",
	product:            "Product",
	monthlyQuantity:    "Monthly quantity",
	variableCost:       "Variable cost / unit",
	fixedShare:         "Fixed cost / unit",
	totalUnitCost:      "Total cost / unit",
	finalPrice:         "Price",
	allocation:         "Fixed Cost Allocation",
	allocationIntro:    "How the shared monthly fixed costs are split across products.",
	allocatedAmount:    "Allocated amount",
	allocatedRatio:     "Share",
	pricingDetail:      "Pricing",
	avgCompetitor:      "Avg. competitor price",
	basePrice:          "Strategy price",
	breakEven:          "Break-Even",
	contributionMargin: "Contribution margin / unit",
	breakEvenUnits:     "Break-even units / month",
	breakEvenRevenue:   "Break-even revenue / month",
	breakEvenStatus:    "Status",
	reached:            "reached",
	notReached:         "not yet reached",
	notViable:          "not viable at this price",
	customerEconomics:  "Customer Economics",
	portfolio:          "Portfolio (annual basis)",
	ratio:              "LTV:CAC",
	lifetimeMonths:     "Lifetime (months)",
	warnings:           "Warnings",
	glossary:           "Glossary",
	term:               "Term",
	definition:         "Definition",
	glossaryRows: [][2]string{
		{"Contribution margin", "Price minus variable cost per unit; what each sale contributes toward fixed costs"},
		{"Break-even point", "The monthly sales volume at which revenue covers all costs"},
		{"LTV", "Customer lifetime value; the gross profit one customer generates before churning"},
		{"CAC", "Customer acquisition cost; marketing spend divided by new customers"},
		{"LTV:CAC", "How many times a customer pays back their acquisition cost; 3+ is considered healthy"},
		{"Fixed cost allocation", "Splitting shared expenses (rent, salaries) across products so each carries its fair share"},
	},
	disclaimer: "All figures are estimates derived from the inputs you provided. They are planning aids, not financial advice.",
	strategies: map[engine.Strategy]string{
		engine.StrategyCostPlus:    "cost plus",
		engine.StrategyCompetitive: "competitive",
		engine.StrategyPenetration: "penetration",
		engine.StrategyValueBased:  "value based",
		engine.StrategyManual:      "manual",
	},
}

var arabicLabels = labels{
	title:              "تقرير التسعير",
	generatedAt:        "تاريخ الإنشاء",
	productCount:       "عدد المنتجات",
	fixedCostPool:      "التكاليف الثابتة الشهرية المشتركة",
	recommendation:     "الاستراتيجية الموصى بها",
	strategy:           "الاستراتيجية",
	recommendedMargin:  "هامش الربح الموصى به",
	rationale:          "السبب",
	unitEconomics:      "اقتصاديات الوحدة",
	product:            "المنتج",
	monthlyQuantity:    "الكمية الشهرية",
	variableCost:       "التكلفة المتغيرة للوحدة",
	fixedShare:         "التكلفة الثابتة للوحدة",
	totalUnitCost:      "إجمالي تكلفة الوحدة",
	finalPrice:         "السعر",
	allocation:         "توزيع التكاليف الثابتة",
	allocationIntro:    "كيفية توزيع التكاليف الثابتة الشهرية المشتركة على المنتجات.",
	allocatedAmount:    "المبلغ الموزع",
	allocatedRatio:     "النسبة",
	pricingDetail:      "التسعير",
	avgCompetitor:      "متوسط سعر المنافسين",
	basePrice:          "سعر الاستراتيجية",
	breakEven:          "نقطة التعادل",
	contributionMargin: "هامش المساهمة للوحدة",
	breakEvenUnits:     "وحدات التعادل شهريًا",
	breakEvenRevenue:   "إيرادات التعادل شهريًا",
	breakEvenStatus:    "الحالة",
	reached:            "تم الوصول إليها",
	notReached:         "لم يتم الوصول إليها بعد",
	notViable:          "غير قابلة للتحقيق بهذا السعر",
	customerEconomics:  "اقتصاديات العملاء",
	portfolio:          "المحفظة (على أساس سنوي)",
	ratio:              "نسبة LTV إلى CAC",
	lifetimeMonths:     "عمر العميل (شهور)",
	warnings:           "تنبيهات",
	glossary:           "مسرد المصطلحات",
	term:               "المصطلح",
	definition:         "التعريف",
	glossaryRows: [][2]string{
		{"هامش المساهمة", "السعر ناقص التكلفة المتغيرة للوحدة؛ ما تساهم به كل عملية بيع في تغطية التكاليف الثابتة"},
		{"نقطة التعادل", "حجم المبيعات الشهري الذي تغطي عنده الإيرادات جميع التكاليف"},
		{"القيمة الدائمة للعميل LTV", "إجمالي الربح الذي يحققه العميل الواحد قبل توقفه عن الشراء"},
		{"تكلفة اكتساب العميل CAC", "الإنفاق التسويقي مقسومًا على عدد العملاء الجدد"},
		{"نسبة LTV إلى CAC", "كم مرة يسترد العميل تكلفة اكتسابه؛ النسبة 3 فأكثر تعتبر صحية"},
		{"توزيع التكاليف الثابتة", "تقسيم المصاريف المشتركة (الإيجار، الرواتب) على المنتجات بحيث يتحمل كل منتج نصيبه العادل"},
	},
	disclaimer: "جميع الأرقام تقديرات مبنية على البيانات التي أدخلتها، وهي أداة للتخطيط وليست استشارة مالية.",
	strategies: map[engine.Strategy]string{
		engine.StrategyCostPlus:    "التكلفة زائد هامش",
		engine.StrategyCompetitive: "التسعير التنافسي",
		engine.StrategyPenetration: "اختراق السوق",
		engine.StrategyValueBased:  "التسعير بالقيمة",
		engine.StrategyManual:      "سعر يدوي",
	},
}
