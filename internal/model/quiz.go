package model

type MCQQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

type TrueFalseQuestion struct {
	Statement   string `json:"statement"`
	Answer      bool   `json:"answer"`
	Explanation string `json:"explanation"`
}

type ShortAnswerQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Quiz 三段式测验，生成式模型按此 JSON 合同返回
type Quiz struct {
	MCQ         []MCQQuestion         `json:"mcq"`
	TrueFalse   []TrueFalseQuestion   `json:"trueFalse"`
	ShortAnswer []ShortAnswerQuestion `json:"shortAnswer"`
}

// QuizAnswers 用户作答。短答题不参与自动判分
type QuizAnswers struct {
	MCQ       []string `json:"mcq"`
	TrueFalse []*bool  `json:"trueFalse"`
}
