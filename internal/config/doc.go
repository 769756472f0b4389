// Package config 负责加载与解析进程配置：内置默认值、YAML/JSON 配置文件与环境变量覆盖三级合并。
// 该层只依赖标准库与 yaml，供 main 与各组件直接读取结构化配置。
package config
