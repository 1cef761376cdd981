package quiz

// Communication-style diagnosis: 4 social styles, 4 questions each.

const (
	Driver     Category = "D"
	Expressive Category = "E"
	Amiable    Category = "A"
	Analytical Category = "An"
)

// CommunicationStyleBank is the Driver/Expressive/Amiable/Analytical
// social-style variant.
var CommunicationStyleBank = &Bank{
	Key:                  "communication_style",
	Title:                "コミュニケーションスタイル診断",
	Categories:           []Category{Driver, Expressive, Amiable, Analytical},
	QuestionsPerCategory: 4,
	Questions: []Question{
		{ID: 1, Category: Driver, Text: "目標達成のためには、多少の犠牲やリスクも厭わない"},
		{ID: 2, Category: Driver, Text: "会議では結論を出すことを優先し、テンポよく進めたい"},
		{ID: 3, Category: Driver, Text: "問題が起きたとき、すぐに解決策を考えて行動に移す"},
		{ID: 4, Category: Driver, Text: "チームを引っ張り、明確な方向性を示すことが得意だ"},
		{ID: 5, Category: Expressive, Text: "新しいアイデアや可能性について話すことが好きだ"},
		{ID: 6, Category: Expressive, Text: "初対面の人とでも、すぐに打ち解けて会話を楽しめる"},
		{ID: 7, Category: Expressive, Text: "プレゼンや人前で話すとき、エネルギーが湧いてくる"},
		{ID: 8, Category: Expressive, Text: "チームの雰囲気を盛り上げ、メンバーを鼓舞することができる"},
		{ID: 9, Category: Amiable, Text: "人の話をじっくり聞いて、気持ちを理解することを大切にする"},
		{ID: 10, Category: Amiable, Text: "チーム全体の調和を保ち、協力して物事を進めたい"},
		{ID: 11, Category: Amiable, Text: "急激な変化よりも、安定した環境で着実に進めることを好む"},
		{ID: 12, Category: Amiable, Text: "相手との長期的な信頼関係を築くことを重視する"},
		{ID: 13, Category: Analytical, Text: "意思決定する前に、データや事実をしっかり確認したい"},
		{ID: 14, Category: Analytical, Text: "リスクを慎重に評価し、ミスを防ぐための準備を大切にする"},
		{ID: 15, Category: Analytical, Text: "物事を論理的に分析し、正確に理解することが得意だ"},
		{ID: 16, Category: Analytical, Text: "詳細な計画を立て、手順を踏んで進めることを好む"},
	},
	Content: map[Category]Content{
		Driver: {
			Title:       "Driver型（推進型）",
			Description: "結果重視、決断が早い、リーダーシップを発揮するタイプです。目標達成に向けて迅速に行動し、チームを前に進める推進力があります。",
			Strengths: []string{
				"目標達成に向けて迅速に行動",
				"決断力があり、効率を重視",
				"リーダーシップを発揮できる",
				"物事を前に進める推進力",
			},
			BusinessTips: []string{
				"プロジェクトのリーダーとして活躍",
				"迅速な意思決定が求められる場面で力を発揮",
				"明確な目標設定と進行管理",
				"相手がDriver型の場合：結論ファースト、簡潔に伝える",
			},
			RelationshipTips: []string{
				"結論から話すとスムーズ",
				"無駄を省いた直接的なコミュニケーション",
				"相手の時間を尊重する",
				"データや実績で説得する",
			},
			Closing: "この推進力を活かして、リーダーシップを発揮していきましょう！",
		},
		Expressive: {
			Title:       "Expressive型（表現型）",
			Description: "社交的、情熱的、アイデア豊富で人を巻き込むタイプです。人を惹きつける魅力とエネルギーがあり、チームの雰囲気を明るくします。",
			Strengths: []string{
				"人を惹きつける魅力とエネルギー",
				"クリエイティブで革新的なアイデア",
				"チームの雰囲気を明るくする",
				"ネットワーキングが得意",
			},
			BusinessTips: []string{
				"新規プロジェクトの企画・提案",
				"プレゼンテーションで人を動かす",
				"チームのモチベーションを高める",
				"相手がExpressive型の場合：ビジョンや可能性を語る",
			},
			RelationshipTips: []string{
				"明るく楽しい雰囲気を作る",
				"ビジョンや夢を共有する",
				"ポジティブなエネルギーで人を鼓舞",
				"一緒に盛り上がる",
			},
			Closing: "この魅力と情熱を活かして、人を巻き込んでいきましょう！",
		},
		Amiable: {
			Title:       "Amiable型（協調型）",
			Description: "協力的、聞き上手、安定志向で人を支えるタイプです。他者の気持ちを理解し、チームワークを大切にします。",
			Strengths: []string{
				"他者の気持ちを理解し、共感できる",
				"チームワークを大切にする",
				"安定した関係性を築く",
				"聞き上手で信頼される",
			},
			BusinessTips: []string{
				"チームの調整役として活躍",
				"顧客との長期的な関係構築",
				"サポート業務で力を発揮",
				"相手がAmiable型の場合：時間をかけて関係を築く",
			},
			RelationshipTips: []string{
				"相手の話をじっくり聞く",
				"安心できる雰囲気を作る",
				"長期的な信頼関係を築く",
				"チーム全体への配慮を示す",
			},
			Closing: "この協調性を活かして、信頼の輪を広げていきましょう！",
		},
		Analytical: {
			Title:       "Analytical型（分析型）",
			Description: "論理的、慎重、データ重視で正確性を求めるタイプです。データに基づいた正確な分析とリスク評価が得意です。",
			Strengths: []string{
				"データに基づいた正確な分析",
				"リスクを慎重に評価",
				"論理的な思考と判断",
				"詳細な計画と準備",
			},
			BusinessTips: []string{
				"データ分析・戦略立案",
				"品質管理・リスク管理",
				"正確性が求められる業務",
				"相手がAnalytical型の場合：データや根拠を示す",
			},
			RelationshipTips: []string{
				"事実やデータで信頼を築く",
				"論理的な説明を心がける",
				"慎重に関係を深める",
				"時間をかけて検討してもらう",
			},
			Closing: "この分析力を活かして、確実な成果を生み出していきましょう！",
		},
		Balanced: {
			Title:       "バランス型",
			Description: "各スタイルをバランスよく使いこなせるタイプです。状況に応じて柔軟に対応でき、多様な人と効果的にコミュニケーションができます。",
			Strengths: []string{
				"相手や状況に合わせて柔軟に対応",
				"多様なタイプの人と効果的にコミュニケーション",
				"バランスの取れたアプローチ",
				"様々な役割で活躍できる",
			},
			BusinessTips: []string{
				"様々な役割で活躍できる",
				"チームの橋渡し役",
				"状況に応じた最適なスタイルを選択",
				"相手のスタイルに合わせて柔軟に対応",
			},
			RelationshipTips: []string{
				"相手のタイプを見極めて対応",
				"状況に応じたコミュニケーション",
				"多様な人との関係構築",
				"バランスの取れたアプローチ",
			},
			Closing: "この柔軟性を活かして、様々な場面で効果的なコミュニケーションを楽しみましょう！",
		},
	},
}
