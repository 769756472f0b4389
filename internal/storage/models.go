package storage

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost 为 posts 集合中的文档，评论以内嵌数组形式存储（展示顺序即插入顺序）。
type BlogPost struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Subtitle string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Content  string             `bson:"content" json:"content"`
	Category string             `bson:"category" json:"category"`
	// Author 为作者署名，Email 为作者联系邮箱
	Author   string    `bson:"author" json:"author"`
	Email    string    `bson:"email" json:"email"`
	Date     time.Time `bson:"date" json:"date"`
	Comments []Comment `bson:"comments" json:"comments"`
}

// Comment 只作为 BlogPost 的内嵌文档存在，没有独立集合。
type Comment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author  string             `bson:"author" json:"author"`
	Content string             `bson:"content" json:"content"`
	Date    time.Time          `bson:"date" json:"date"`
}

// Subscriber 为 subscribers 集合中的文档；email 由唯一索引保障全局唯一。
type Subscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	SubscribedAt time.Time          `bson:"subscribed_at" json:"subscribed_at"`
}
