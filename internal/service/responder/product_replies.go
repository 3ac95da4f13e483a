package responder

import "github.com/ruwais/masraf/internal/analysis/intent"

type productReply struct {
	en string
	ar string

	// Some replies come with a data block attached.
	showAccounts      bool
	showBills         bool
	showSubscriptions bool
}

var applyReplies = map[intent.Product]productReply{
	intent.ProductSalaryLinkedSavings: {
		en: "Great choice! Since your salary is transferred to STC Bank, you're eligible. What percentage of your salary would you like to save automatically each month? (Recommended: 10-20%)",
		ar: "اختيار رائع! بما أن راتبك يُحوّل إلى بنك stc، فأنت مؤهل. ما النسبة المئوية من راتبك التي تود ادخارها تلقائياً كل شهر؟ (الموصى به: 10-20%)",
	},
	intent.ProductAutomaticSavings: {
		en: "Excellent choice! A consistent savings habit is key. How much would you like to transfer to your savings automatically each month?",
		ar: "اختيار ممتاز! عادة الادخار المستمر هي المفتاح. كم تود تحويله إلى مدخراتك تلقائياً كل شهر؟",
	},
	intent.ProductGoalSavings: {
		en: "Goal-Based Savings is designed to help you reach specific targets, like a vacation or a new car. You set the goal amount and timeline, and we help you track your progress. The minimum amount to start is 100 SAR. Would you like to set up a goal?",
		ar: "الادخار القائم على الأهداف مصمم لمساعدتك في الوصول لأهداف محددة مثل إجازة أو سيارة جديدة. تحدد المبلغ المستهدف والجدول الزمني، ونساعدك على تتبع تقدمك. الحد الأدنى للبدء هو 100 ريال. هل تود تحديد هدف؟",
	},
	intent.ProductCashbackCard: {
		en: "The Premium Cashback Card gives you 2% back on all purchases. I'll need to verify your eligibility. Would you like to proceed with the card application?",
		ar: "بطاقة الاسترداد النقدي المميزة تمنحك 2% استرداد على جميع مشترياتك. سأحتاج للتحقق من أهليتك. هل تود المتابعة في طلب البطاقة؟",
	},
	intent.ProductTravelCard: {
		en: "The Travel Rewards Card earns you 1.5 miles per SAR spent. You can redeem miles for free flights. No annual fee for the first year! Would you like to apply?",
		ar: "بطاقة مكافآت السفر تكسبك 1.5 ميل لكل ريال تنفقه. يمكنك استبدال الأميال برحلات مجانية. بدون رسوم سنوية للسنة الأولى! هل تود التقديم؟",
	},
	intent.ProductPersonalLoan: {
		en: "We offer personal loans up to 500,000 SAR with competitive rates. I'll need to verify your eligibility. How much do you need?",
		ar: "نقدم قروضاً شخصية تصل إلى 500,000 ريال بمعدلات تنافسية. سأحتاج للتحقق من أهليتك. ما المبلغ الذي تحتاجه؟",
	},
	intent.ProductAutopay: {
		en: "Bill Payment Autopay will automatically pay your bills on the due date. You'll receive reminders before each payment. Which bills would you like to set up autopay for?",
		ar: "خدمة الدفع التلقائي للفواتير ستدفع فواتيرك تلقائياً في تاريخ الاستحقاق. ستتلقى تذكيرات قبل كل دفعة. ما الفواتير التي تود إعداد الدفع التلقائي لها؟",
		showBills: true,
	},
	intent.ProductRoundUpSavings: {
		en: "Round-Up Savings rounds up every purchase to the nearest SAR and puts the difference in your savings. An effortless way to save! Would you like to enable it now?",
		ar: "ادخار التقريب يقرّب كل عملية شراء للريال الأعلى ويضع الفرق في مدخراتك. طريقة سهلة للادخار دون التفكير! هل تود تفعيله الآن؟",
	},
	intent.ProductVirtualCard: {
		en: "I can create a virtual card for you instantly for secure online shopping. You can set a spending limit for it. What limit would you like for the card?",
		ar: "يمكنني إنشاء بطاقة افتراضية لك فوراً للتسوق الآمن عبر الإنترنت. يمكنك تحديد حد إنفاق لها. ما الحد الذي تريده للبطاقة؟",
	},
	intent.ProductSubscriptionManager: {
		en: "The Subscription Manager will help you track and manage all your recurring subscriptions. You can see your monthly total and cancel any subscription with one tap. Would you like to see your current subscriptions?",
		ar: "مدير الاشتراكات سيساعدك على تتبع وإدارة جميع اشتراكاتك المتكررة. يمكنك رؤية الإجمالي الشهري وإلغاء أي اشتراك بنقرة واحدة. هل تود رؤية اشتراكاتك الحالية؟",
		showSubscriptions: true,
	},
	intent.ProductHomeFinancing: {
		en: "We offer home financing up to 90% of the property value for up to 25 years. I'll need some information to calculate your eligibility. What's the value of the property you're considering?",
		ar: "نقدم تمويلاً عقارياً يصل إلى 90% من قيمة العقار لمدة تصل إلى 25 سنة. سأحتاج لبعض المعلومات لحساب أهليتك. ما قيمة العقار الذي تفكر فيه؟",
	},
	intent.ProductCarFinancing: {
		en: "We offer car financing with competitive rates and quick approval. I'll need some information. What type of car are you considering and what's the approximate price?",
		ar: "نقدم تمويل سيارات بمعدلات تنافسية وموافقة سريعة. سأحتاج لبعض المعلومات. ما نوع السيارة التي تفكر فيها وما السعر التقريبي؟",
	},
	intent.ProductIntlTransferPlus: {
		en: "International Transfer Plus gives you 50% off transfer fees and priority processing. Would you like to upgrade your account to this service?",
		ar: "خدمة التحويل الدولي بلس تمنحك خصم 50% على رسوم التحويل ومعالجة ذات أولوية. هل تود ترقية حسابك لهذه الخدمة؟",
	},
	intent.ProductDiningRewards: {
		en: "The Dining Rewards program gives you 5% back at over 2000 partner restaurants. Based on your dining spending, you'll save around 150 SAR per month! Would you like to join?",
		ar: "برنامج مكافآت المطاعم يمنحك 5% استرداد في أكثر من 2000 مطعم شريك. بناءً على إنفاقك على المطاعم، ستوفر حوالي 150 ريال شهرياً! هل تود الانضمام؟",
	},
	intent.ProductZakatCalculator: {
		en: "The Zakat Calculator automatically calculates your annual Zakat based on your balances and savings. You can also donate directly to approved charities. Would you like to calculate your Zakat now?",
		ar: "حاسبة الزكاة تحسب زكاتك السنوية تلقائياً بناءً على أرصدتك ومدخراتك. يمكنك أيضاً التبرع مباشرة للجمعيات الخيرية المعتمدة. هل تود حساب زكاتك الآن؟",
		showAccounts: true,
	},
	intent.ProductGeneric: {
		en: "Thanks for your interest! I'll help you apply. Please provide more details about which product you'd like to apply for.",
		ar: "شكراً لاهتمامك! سأساعدك في التقديم. يرجى تزويدي بمزيد من التفاصيل حول المنتج الذي تريد التقديم عليه.",
	},
}

var detailReplies = map[intent.Product]productReply{
	intent.ProductSalaryLinkedSavings: {
		en: "**Salary-Linked Savings**\n\nThis product automatically deducts a percentage you choose from your salary as soon as you receive it, before you spend.\n\n**Features:**\n• Savings rate up to 4%\n• No fees\n• Flexible withdrawal anytime\n• Track progress in the app\n\n**Requirements:**\n• Salary must be transferred to STC Bank account\n• Minimum savings: 5% of salary\n\nWould you like to apply now?",
		ar: "**ادخار مرتبط بالراتب**\n\nهذا المنتج يخصم نسبة تختارها من راتبك تلقائياً بمجرد استلامه، قبل أن تنفق.\n\n**المميزات:**\n• معدل ادخار يصل إلى 4%\n• بدون رسوم\n• سحب مرن في أي وقت\n• تتبع التقدم عبر التطبيق\n\n**المتطلبات:**\n• تحويل الراتب إلى حساب stc bank\n• الحد الأدنى للادخار: 5% من الراتب\n\nهل تود التقديم الآن؟",
	},
	intent.ProductGoalSavings: {
		en: "**Goal-Based Savings**\n\nSet a financial goal and we'll help you achieve it with regular deposits.\n\n**Features:**\n• Set a goal and target amount\n• Track progress with percentage\n• Motivational reminders\n• Rewards when you reach your goal\n\n**Example Goals:**\n• Vacation (20,000 SAR)\n• Car (50,000 SAR)\n• Wedding (100,000 SAR)\n\nMinimum to start: 100 SAR\n\nWould you like to set a goal now?",
		ar: "**ادخار قائم على الأهداف**\n\nحدد هدفاً مالياً وسنساعدك على تحقيقه بإيداعات منتظمة.\n\n**المميزات:**\n• تحديد هدف ومبلغ مستهدف\n• تتبع التقدم بنسبة مئوية\n• تذكيرات تحفيزية\n• مكافآت عند تحقيق الهدف\n\n**أمثلة على الأهداف:**\n• إجازة (20,000 ريال)\n• سيارة (50,000 ريال)\n• زفاف (100,000 ريال)\n\nالحد الأدنى للبدء: 100 ريال\n\nهل تود تحديد هدف الآن؟",
	},
	intent.ProductGeneric: {
		en: "I'd be happy to provide more information. Which product would you like to know more about?",
		ar: "سأكون سعيداً بتقديم المزيد من المعلومات. أي منتج تود معرفة المزيد عنه؟",
	},
}

func lookupReply(table map[intent.Product]productReply, product intent.Product) productReply {
	if reply, ok := table[product]; ok {
		return reply
	}
	return table[intent.ProductGeneric]
}
