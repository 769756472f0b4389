// Package storage 提供底层持久化适配，实现 MongoDB 连接、索引保障以及文档模型声明。
// 其它层应通过 services 间接访问存储，以便集中处理校验与错误归类。
package storage
