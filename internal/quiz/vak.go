package quiz

// VAK learning-style diagnosis: 3 categories, 4 questions each.
// Question ordering interleaves the categories so no two consecutive
// questions probe the same sense.

const (
	Visual      Category = "V"
	Auditory    Category = "A"
	Kinesthetic Category = "K"
)

// VAKBank is the visual/auditory/kinesthetic assessment variant.
var VAKBank = &Bank{
	Key:                  "vak",
	Title:                "VAKタイプ診断",
	Categories:           []Category{Visual, Auditory, Kinesthetic},
	QuestionsPerCategory: 4,
	Questions: []Question{
		{ID: 1, Category: Auditory, Text: "説明を聞くとき、ストーリーや事例がないと理解しづらい"},
		{ID: 2, Category: Kinesthetic, Text: "新しい機器やソフトは、マニュアルよりまず触って試すことが多い"},
		{ID: 3, Category: Visual, Text: "道順を説明するとき、地図や絵を描いて説明したくなる"},
		{ID: 4, Category: Auditory, Text: "メールやチャットより、電話や直接話すことが多い"},
		{ID: 5, Category: Kinesthetic, Text: "セミナーや研修では、実践やワークショップで学ぶ方が好きだ"},
		{ID: 6, Category: Visual, Text: "複雑な情報でも、図や表、グラフなどで見ると一目で理解できる"},
		{ID: 7, Category: Auditory, Text: "声のトーンや話し方から、相手の本音や感情を読み取れる"},
		{ID: 8, Category: Kinesthetic, Text: "状況を判断するとき、見た目より雰囲気や空気感で判断することが多い"},
		{ID: 9, Category: Visual, Text: "初対面の人は、名前より顔や服装を覚えることが多い"},
		{ID: 10, Category: Auditory, Text: "新しいことを決めるとき、実際に試すよりまず話を聞くことが多い"},
		{ID: 11, Category: Visual, Text: "新しいことを学ぶとき、文章より図やイラストを先に見ることが多い"},
		{ID: 12, Category: Kinesthetic, Text: "人を理解するには、一緒に何かを体験することで距離が縮まると感じる"},
	},
	Content: map[Category]Content{
		Visual: {
			Title:       "👀 見るタイプ（視覚型）",
			Description: "目から入る情報を重視し、見て理解しようとするタイプです。",
			Strengths: []string{
				"データや資料、図解で理解しやすい",
				"相手の表情やボディランゲージを読み取る",
				"視覚的な記憶が得意",
				"見た目や雰囲気を大切にする",
			},
			BusinessTips: []string{
				"プレゼンには視覚資料を効果的に使う",
				"商談では実物やサンプルを見せる",
				"ホワイトボードや図解で説明する",
				"身だしなみや会議室の雰囲気づくりを意識",
			},
			RelationshipTips: []string{
				"見た目や雰囲気を大切にする",
				"表情やボディランゲージで理解を深める",
				"視覚的な印象を共有する",
			},
			Closing: "視覚で人を動かすこの才能は、プレゼンテーションや営業で力を発揮します。",
		},
		Auditory: {
			Title:       "👂 聞くタイプ（聴覚型）",
			Description: "耳から入る情報を重視し、会話や説明を通じて理解しようとするタイプです。",
			Strengths: []string{
				"話を聞いて理解するのが得意",
				"会話で信頼関係を築く",
				"声のトーンから感情を読み取る",
				"ストーリーや背景に興味を持つ",
			},
			BusinessTips: []string{
				"丁寧な説明と対話を大切に",
				"電話やオンライン会議を効果的に活用",
				"グループディスカッションに積極参加",
				"相手の話をよく聞き、質問する",
			},
			RelationshipTips: []string{
				"相手の話に耳を傾ける",
				"背景やストーリーを楽しむ",
				"参加者との会話を楽しむ",
			},
			Closing: "傾聴で信頼を築くこの才能は、カウンセリングやコーチングで力を発揮します。",
		},
		Kinesthetic: {
			Title:       "✋ 体感タイプ（体感覚型）",
			Description: "体で感じて理解しようとし、体験や実践を通じて学ぶタイプです。",
			Strengths: []string{
				"実際に体験することで深く理解",
				"直感や雰囲気を大切にする",
				"実践的なアプローチが好き",
				"身体で感じる感覚に敏感",
			},
			BusinessTips: []string{
				"実践的なワークショップに参加",
				"まず試してみる、体験する",
				"ロールプレイで理解を深める",
				"現場や実物を見て判断",
			},
			RelationshipTips: []string{
				"実際に体験しながら学ぶ",
				"五感をじっくり楽しむ",
				"一緒に体験することで理解を深める",
			},
			Closing: "体感で場を読むこの才能は、現場マネジメントやチーム作りで力を発揮します。",
		},
		Balanced: {
			Title:       "⚖️ バランス型",
			Description: "あなたは状況に応じて柔軟にコミュニケーションスタイルを変えられる才能があります！視覚、聴覚、体感覚のすべてをバランスよく使えるため、相手のタイプに合わせた効果的なアプローチが可能です。",
			BusinessTips: []string{
				"相手のタイプに合わせて柔軟に対応",
				"視覚資料・対話・実践を組み合わせた提案",
				"多様なチームメンバーとの効果的な協働",
			},
			RelationshipTips: []string{
				"様々なタイプの人と良好な関係を築く",
				"相手の反応を見ながら最適なアプローチを選択",
				"どんな場面でも柔軟に対応できる",
			},
			Closing: "あらゆる状況に対応できるこの才能は、チームリーダーやコーチに最適です。",
		},
	},
}
