// Package services 提供应用的领域服务层，封装校验、错误归类与存储访问。
// 该层对 handlers 提供稳定接口，避免在 HTTP 层直接操作数据访问或外部 API 细节。
package services
