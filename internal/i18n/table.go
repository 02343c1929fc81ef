package i18n

type entry struct {
	th string
	en string
}

var table = map[string]entry{
	// Navbar
	"nav.home":     {"หน้าหลัก", "Home"},
	"nav.products": {"สินค้า", "Products"},
	"nav.orders":   {"คำสั่งซื้อ", "Orders"},
	"nav.admin":    {"แอดมิน", "Admin"},
	"nav.login":    {"เข้าสู่ระบบ", "Login"},
	"nav.logout":   {"ออกจากระบบ", "Logout"},
	"nav.register": {"สมัครสมาชิก", "Register"},

	// Hero
	"hero.welcome":   {"ยินดีต้อนรับสู่ E-Shop!", "Welcome to E-Shop!"},
	"hero.subtitle":  {"ค้นพบสินค้าคุณภาพดีในราคาที่เหมาะสม", "Discover quality products at great prices"},
	"hero.shopNow":   {"เริ่มช้อปปิ้ง", "Shop Now"},
	"hero.learnMore": {"เรียนรู้เพิ่มเติม", "Learn More"},

	// Products page
	"products.title":          {"สินค้าทั้งหมด", "All Products"},
	"products.subtitle":       {"เลือกซื้อสินค้าคุณภาพดีจากเรา", "Choose quality products from us"},
	"products.loading":        {"กำลังโหลดสินค้า...", "Loading products..."},
	"products.error":          {"เกิดข้อผิดพลาด", "An error occurred"},
	"products.noProducts":     {"ไม่มีสินค้า", "No products"},
	"products.noProductsDesc": {"ขณะนี้ยังไม่มีสินค้าในระบบ", "No products available at the moment"},
	"products.addedToCart":    {"เพิ่มลงตะกร้าแล้ว!", "Added to cart!"},
	"products.add":            {"เพิ่ม", "Add"},
	"products.errorConnect":   {"ไม่สามารถเชื่อมต่อกับเซิร์ฟเวอร์ได้", "Cannot connect to server"},
	"products.errorNotFound":  {"ไม่พบข้อมูลสินค้า", "Products not found"},
	"products.errorServer":    {"เกิดข้อผิดพลาดในเซิร์ฟเวอร์", "Server error occurred"},
	"products.errorLoad":      {"ไม่สามารถโหลดสินค้าได้", "Cannot load products"},

	// Product detail
	"productDetail.backToProducts": {"กลับไปหน้าสินค้า", "Back to Products"},
	"productDetail.description":    {"รายละเอียดสินค้า", "Product Description"},
	"productDetail.quantity":       {"จำนวน", "Quantity"},
	"productDetail.addToCart":      {"เพิ่มลงตะกร้า", "Add to Cart"},
	"productDetail.buyNow":         {"ซื้อเลย", "Buy Now"},
	"productDetail.loading":        {"กำลังโหลดข้อมูลสินค้า...", "Loading product..."},
	"productDetail.notFound":       {"ไม่พบสินค้า", "Product not found"},
	"productDetail.notFoundDesc":   {"ไม่พบสินค้าที่คุณกำลังมองหา", "The product you are looking for was not found"},

	// Cart
	"cart.title":            {"ตะกร้าสินค้า", "Shopping Cart"},
	"cart.empty":            {"ตะกร้าว่างเปล่า", "Cart is empty"},
	"cart.emptyDesc":        {"คุณยังไม่มีสินค้าในตะกร้า", "You have no items in your cart"},
	"cart.startShopping":    {"เริ่มช้อปปิ้ง", "Start Shopping"},
	"cart.total":            {"ยอดรวม", "Total"},
	"cart.checkout":         {"ดำเนินการชำระเงิน", "Proceed to Checkout"},
	"cart.continueShopping": {"ช้อปปิ้งต่อ", "Continue Shopping"},
	"cart.items":            {"รายการ", "items"},
	"cart.remove":           {"ลบ", "Remove"},

	// Checkout
	"checkout.title":         {"ชำระเงิน", "Checkout"},
	"checkout.shippingInfo":  {"ข้อมูลการจัดส่ง", "Shipping Information"},
	"checkout.fullName":      {"ชื่อ-นามสกุล", "Full Name"},
	"checkout.address":       {"ที่อยู่", "Address"},
	"checkout.city":          {"จังหวัด", "City"},
	"checkout.postalCode":    {"รหัสไปรษณีย์", "Postal Code"},
	"checkout.phone":         {"เบอร์โทรศัพท์", "Phone"},
	"checkout.placeOrder":    {"ยืนยันคำสั่งซื้อ", "Place Order"},
	"checkout.orderSummary":  {"สรุปคำสั่งซื้อ", "Order Summary"},
	"checkout.subtotal":      {"ยอดรวมสินค้า", "Subtotal"},
	"checkout.shipping":      {"ค่าจัดส่ง", "Shipping"},
	"checkout.free":          {"ฟรี", "Free"},
	"checkout.total":         {"ยอดรวมทั้งหมด", "Total"},
	"checkout.processing":    {"กำลังดำเนินการ...", "Processing..."},
	"checkout.fillAllFields": {"กรุณากรอกข้อมูลให้ครบถ้วน", "Please fill in all fields"},
	"checkout.orderSuccess":  {"สั่งซื้อสำเร็จ!", "Order placed successfully!"},
	"checkout.orderError":    {"ไม่สามารถสร้างคำสั่งซื้อได้", "Cannot create order"},

	// Orders
	"orders.title":        {"คำสั่งซื้อของฉัน", "My Orders"},
	"orders.orderNumber":  {"หมายเลขคำสั่งซื้อ", "Order Number"},
	"orders.date":         {"วันที่", "Date"},
	"orders.status":       {"สถานะ", "Status"},
	"orders.total":        {"ยอดรวม", "Total"},
	"orders.items":        {"รายการสินค้า", "Items"},
	"orders.viewDetails":  {"ดูรายละเอียด", "View Details"},
	"orders.noOrders":     {"ไม่มีคำสั่งซื้อ", "No orders"},
	"orders.noOrdersDesc": {"คุณยังไม่มีคำสั่งซื้อ", "You have no orders yet"},
	"orders.loading":      {"กำลังโหลดคำสั่งซื้อ...", "Loading orders..."},
	"orders.shippingInfo": {"ข้อมูลการจัดส่ง", "Shipping Information"},

	// Admin
	"admin.title":                 {"Admin Panel", "Admin Panel"},
	"admin.subtitle":              {"จัดการสินค้าในระบบ", "Manage products in the system"},
	"admin.addProduct":            {"เพิ่มสินค้าใหม่", "Add New Product"},
	"admin.cancel":                {"ยกเลิก", "Cancel"},
	"admin.addNewProduct":         {"เพิ่มสินค้าใหม่", "Add New Product"},
	"admin.productName":           {"ชื่อสินค้า", "Product Name"},
	"admin.price":                 {"ราคา (บาท)", "Price"},
	"admin.description":           {"รายละเอียด", "Description"},
	"admin.imageUrl":              {"URL รูปภาพ", "Image URL"},
	"admin.imageUrlHint":          {"ใช้ URL จาก Unsplash หรือแหล่งอื่นๆ", "Use URL from Unsplash or other sources"},
	"admin.saveProduct":           {"บันทึกสินค้า", "Save Product"},
	"admin.saving":                {"กำลังบันทึก...", "Saving..."},
	"admin.allProducts":           {"สินค้าทั้งหมด", "All Products"},
	"admin.productsCount":         {"รายการ", "items"},
	"admin.image":                 {"รูปภาพ", "Image"},
	"admin.productNameCol":        {"ชื่อสินค้า", "Product Name"},
	"admin.descriptionCol":        {"รายละเอียด", "Description"},
	"admin.priceCol":              {"ราคา", "Price"},
	"admin.idCol":                 {"ID", "ID"},
	"admin.manageCol":             {"จัดการ", "Manage"},
	"admin.noProducts":            {"ยังไม่มีสินค้า", "No products yet"},
	"admin.noProductsDesc":        {"เริ่มต้นโดยการเพิ่มสินค้าใหม่", "Start by adding a new product"},
	"admin.productAdded":          {"เพิ่มสินค้าสำเร็จ!", "Product added successfully!"},
	"admin.productDeleted":        {"ลบสินค้าสำเร็จ!", "Product deleted successfully!"},
	"admin.errorAdd":              {"ไม่สามารถเพิ่มสินค้าได้ กรุณาลองใหม่อีกครั้ง", "Cannot add product. Please try again"},
	"admin.errorDelete":           {"เกิดข้อผิดพลาดในการลบสินค้า", "Error deleting product"},
	"admin.errorLoad":             {"ไม่สามารถโหลดสินค้าได้", "Cannot load products"},
	"admin.fillAllFields":         {"กรุณากรอกข้อมูลให้ครบถ้วน", "Please fill in all fields"},
	"admin.confirmDelete":         {"คุณต้องการลบสินค้า", "Do you want to delete product"},
	"admin.confirmDeleteQuestion": {"ใช่หรือไม่?", "?"},
	"admin.cannotDelete":          {"ไม่สามารถลบสินค้าได้", "Cannot delete product"},
	"admin.required":              {"*", "*"},

	// Auth
	"auth.login":          {"เข้าสู่ระบบ", "Login"},
	"auth.register":       {"สมัครสมาชิก", "Register"},
	"auth.username":       {"ชื่อผู้ใช้", "Username"},
	"auth.email":          {"อีเมล", "Email"},
	"auth.password":       {"รหัสผ่าน", "Password"},
	"auth.loginButton":    {"เข้าสู่ระบบ", "Login"},
	"auth.registerButton": {"สมัครสมาชิก", "Register"},
	"auth.noAccount":      {"ยังไม่มีบัญชี?", "Don't have an account?"},
	"auth.haveAccount":    {"มีบัญชีแล้ว?", "Already have an account?"},
	"auth.loginHere":      {"เข้าสู่ระบบที่นี่", "Login here"},
	"auth.registerHere":   {"สมัครที่นี่", "Register here"},
	"auth.usernameTaken":  {"Username นี้ถูกใช้งานแล้ว", "This username is already taken"},
	"auth.emailTaken":     {"Email นี้ถูกใช้งานแล้ว", "This email is already registered"},
	"auth.registered":     {"สมัครสมาชิกสำเร็จ!", "Registration successful!"},

	// Footer
	"footer.about":           {"เกี่ยวกับเรา", "About Us"},
	"footer.quickLinks":      {"ลิงก์ด่วน", "Quick Links"},
	"footer.customerService": {"บริการลูกค้า", "Customer Service"},
	"footer.contact":         {"ติดต่อเรา", "Contact"},
	"footer.rights":          {"สงวนลิขสิทธิ์", "All rights reserved"},

	// Common
	"common.loading": {"กำลังโหลด...", "Loading..."},
	"common.error":   {"เกิดข้อผิดพลาด", "Error"},
	"common.success": {"สำเร็จ", "Success"},
	"common.cancel":  {"ยกเลิก", "Cancel"},
	"common.confirm": {"ยืนยัน", "Confirm"},
	"common.save":    {"บันทึก", "Save"},
	"common.delete":  {"ลบ", "Delete"},
	"common.edit":    {"แก้ไข", "Edit"},
}
