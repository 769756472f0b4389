// Package handlers 承载全部 HTTP 处理器：注册路由、绑定请求体、
// 将服务层结果与错误翻译为状态码与 JSON 响应。
package handlers
