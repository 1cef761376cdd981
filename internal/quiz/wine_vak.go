package quiz

// WineVAKBank is the wine-tasting flavour of the VAK diagnosis, used at
// wine events. Same V/A/K categories and scoring, richer content blocks.
var WineVAKBank = &Bank{
	Key:                  "wine_vak",
	Title:                "ワインで分かるVAKタイプ診断",
	Categories:           []Category{Visual, Auditory, Kinesthetic},
	QuestionsPerCategory: 4,
	Questions: []Question{
		{ID: 1, Category: Visual, Text: "ワインを選ぶとき、ボトルのラベルやデザインが気になる"},
		{ID: 2, Category: Visual, Text: "グラスに注がれたワインの色や透明度をまず観察する"},
		{ID: 3, Category: Visual, Text: "ワインを楽しむとき、テーブルセッティングや雰囲気も大切にする"},
		{ID: 4, Category: Visual, Text: "ワインの印象を写真や画像で記録したくなる"},
		{ID: 5, Category: Auditory, Text: "ワインを選ぶとき、ソムリエや店員の説明を聞きたい"},
		{ID: 6, Category: Auditory, Text: "ワインの産地や製造方法の話を聞くのが好きだ"},
		{ID: 7, Category: Auditory, Text: "ワインの味わいを言葉で表現するのが得意だ"},
		{ID: 8, Category: Auditory, Text: "ワイン会では、他の人の感想や評価を聞くのが楽しい"},
		{ID: 9, Category: Kinesthetic, Text: "ワインを楽しむとき、まず香りを嗅ぐのが大切だ"},
		{ID: 10, Category: Kinesthetic, Text: "ワインは実際に飲んでみないと良し悪しが分からない"},
		{ID: 11, Category: Kinesthetic, Text: "ワインと料理のペアリングを実際に試すのが好きだ"},
		{ID: 12, Category: Kinesthetic, Text: "ワインの温度や口当たりなど、体感を大切にする"},
	},
	Content: map[Category]Content{
		Visual: {
			Title:       "👁️ Visual型（視覚派）",
			Subtitle:    "ワインの見た目を楽しむタイプ",
			Description: "あなたは、視覚的な情報から楽しみや理解を得るタイプです。ワインでは色や輝きに注目し、ビジネスでは資料やデータを重視します。",
			Characteristics: []string{
				"視覚的な美しさや情報から深い印象を受ける",
				"見た目やプレゼンテーションを大切にする",
				"図やグラフ、写真などで記憶しやすい",
				"全体像を把握するのが得意",
			},
			Advice: []string{
				"ワインの色の変化（熟成による色の違い）を楽しみましょう",
				"グラスの形状による見た目の変化に注目してみてください",
				"透明度や輝きから、ワインの品質を判断できます",
				"テーブルコーディネートも含めてワインを楽しみましょう",
			},
			BusinessTips: []string{
				"相手にプレゼンするときは、視覚資料を効果的に使いましょう",
				"あなた自身の見た目や身だしなみも、信頼構築の重要な要素です",
				"相手の表情やボディランゲージから多くを読み取れます",
				"ホワイトボードや図解を使った説明が得意です",
			},
			RecommendedExperience: []string{
				"ワイナリー見学（景色の美しい産地）",
				"プレゼンテーション研修やデザイン講座",
				"コーチングスキルを学ぶ（相手の非言語情報を読み取る）",
				"ビジュアルファシリテーション講座",
			},
			Closing: "この視覚的な才能は、ビジネスのプレゼンテーションやコーチングで相手の表情を読み取る力として活かせます。",
		},
		Auditory: {
			Title:       "👂 Auditory型（聴覚派）",
			Subtitle:    "ワインの物語を楽しむタイプ",
			Description: "あなたは、言葉や会話を通じて理解を深めるタイプです。ワインではストーリーに耳を傾け、ビジネスでは対話を通じて信頼関係を築きます。",
			Characteristics: []string{
				"会話や説明を通じて深く理解できる",
				"ストーリーや背景に興味を持つ",
				"言葉で表現するのが得意",
				"相手の話をじっくり聞くことができる",
			},
			Advice: []string{
				"ソムリエのいるレストランで説明を聞いてみましょう",
				"ワインの歴史やストーリーを学ぶと、より深く楽しめます",
				"テイスティングノートを言葉で記録するのがおすすめ",
				"ワイン仲間との会話で、新たな発見があるでしょう",
			},
			BusinessTips: []string{
				"相手の話をじっくり聞くことで、深い信頼関係を築けます",
				"電話やオンライン会議でも効果的にコミュニケーションできます",
				"声のトーンから相手の本音や感情を読み取れます",
				"ストーリーを交えた説明で、相手の心を動かせます",
			},
			RecommendedExperience: []string{
				"ソムリエによるワインセミナー",
				"コーチング講座（傾聴スキルを磨く）",
				"プレゼンテーション研修（ストーリーテリング）",
				"ファシリテーション講座",
			},
			Closing: "この傾聴の才能は、ビジネスの交渉やコーチングで相手の本音を引き出す力として活かせます。",
		},
		Kinesthetic: {
			Title:       "✋ Kinesthetic型（体感派）",
			Subtitle:    "ワインを体で感じるタイプ",
			Description: "あなたは、実際の体験を通じて理解を深めるタイプです。ワインでは五感で味わい、ビジネスでは実践を通じて学びます。",
			Characteristics: []string{
				"実際に体験することで深く理解できる",
				"直感や雰囲気を大切にする",
				"体で感じる感覚に敏感",
				"まず行動してみることを好む",
			},
			Advice: []string{
				"さまざまなワインを実際に飲み比べてみましょう",
				"香りの変化（グラスを回す前後）を楽しんでください",
				"温度による味の変化を体感してみましょう",
				"料理とのペアリングを積極的に試してみてください",
			},
			BusinessTips: []string{
				"実践的なワークショップやロールプレイが効果的です",
				"現場や実物を見て判断することで、的確な決断ができます",
				"相手の雰囲気や場の空気を読み取るのが得意です",
				"デモやサンプルを使った説明で、相手を動かせます",
			},
			RecommendedExperience: []string{
				"ブラインドテイスティングイベント",
				"コーチング実践講座（ロールプレイ中心）",
				"チームビルディング研修",
				"リーダーシップ体験型ワークショップ",
			},
			Closing: "この体感の才能は、ビジネスの現場判断やコーチングで相手の感情を察知する力として活かせます。",
		},
		Balanced: {
			Title:       "🌟 バランス型",
			Subtitle:    "すべての楽しみ方をマスターするタイプ",
			Description: "あなたは、視覚・聴覚・体感覚のすべてをバランスよく使えるタイプです。状況に応じて柔軟にコミュニケーションスタイルを変えられる才能があります。",
			Characteristics: []string{
				"視覚的情報、会話、体験のすべてから学べる",
				"相手や場面に合わせて、アプローチを変えられる",
				"多様な側面を理解し、説明できる",
				"あらゆるタイプの人とコミュニケーションが取れる",
			},
			Advice: []string{
				"あなたの多角的な視点を活かして、ワインを深く理解しましょう",
				"初心者に教える立場としても適性があります",
				"さまざまなタイプの人と一緒にワインを楽しむと、新たな発見があります",
				"ワインの総合的な評価ができる強みを活かしましょう",
			},
			BusinessTips: []string{
				"相手のタイプを見極めて、最適なアプローチを選べます",
				"チームの多様性を活かしたマネジメントができます",
				"資料・対話・実践を組み合わせた効果的な提案ができます",
				"コーチやファシリテーターとして高い適性があります",
			},
			RecommendedExperience: []string{
				"ワインセミナー（総合的な学び）",
				"コーチング資格取得講座",
				"チームビルディング研修",
				"プロジェクトマネジメント講座",
			},
			Closing: "この柔軟性は、ビジネスのリーダーシップやコーチングで多様な人を導く力として活かせます。",
		},
	},
}
