package graphql

// Schema is the wire contract. Field names are part of the contract and
// must not be renamed.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		userByGoogleSub(googleSub: String!): User
		classesForUser(userId: ID!): [Class!]!
		classByCode(code: String!): Class
		lessonById(id: ID!): Lesson!
	}

	type Mutation {
		createOrUpdateUser(googleSub: String!, name: String!, email: String!, role: String!, picture: String): User!
		createClass(name: String!, teacherId: ID!): Class!
		joinClass(userId: ID!, classCode: String!): Class!
		leaveClass(classId: ID!, studentId: ID!): Boolean!
		createLesson(classId: ID!, title: String!): Lesson!
		deleteLesson(classId: ID!, lessonId: ID!): Boolean!
		deleteClass(classId: ID!): Boolean!
		addQuestionToLesson(lessonId: ID!, title: String!, correctAnswer: String!, wrongAnswers: [String!]!): Question!
		updateQuestion(questionId: ID!, title: String!, correctAnswer: String!, wrongAnswers: [String!]!): Question
		deleteQuestion(questionId: ID!): Boolean!
		submitLessonScore(lessonId: ID!, userId: ID!, score: Float!): LessonScore!
	}

	type User {
		id: ID!
		google_sub: String!
		name: String!
		email: String!
		picture: String!
		role: String!
		classes_taught: [Class!]!
		classes_enrolled: [Class!]!
	}

	type Class {
		id: ID!
		name: String!
		code: String!
		teacher: User
		students: [User!]!
		lessons: [Lesson!]!
	}

	type Lesson {
		id: ID!
		title: String!
		class_: Class
		questions: [Question!]!
		scores: [LessonScore!]!
	}

	type Question {
		id: ID!
		title: String!
		correct_answer: String!
		wrong_answers: [String!]!
		lesson: Lesson
	}

	type LessonScore {
		lesson_id: ID!
		user_id: ID!
		score: Float!
	}
`
